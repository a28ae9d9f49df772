// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/recommend"
)

// RecommendRequest documents the /recommend body. The handler decodes the
// raw body itself so guestId can be a string or a number.
type RecommendRequest struct {
	GuestID     string `json:"guestId" example:"guest-42"`
	Preferences string `json:"preferences" example:"korean"`
}

// Recommend handles restaurant recommendation requests
//
// @Summary Recommend similar restaurants
// @Description Finds the first restaurant whose category equals preferences and returns up to five other restaurants ranked by TF-IDF cosine similarity of "category priceLevel". guestId (string or number) is echoed back unchanged.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Guest and preferred category"
// @Success 200 {object} recommend.Response "Recommendations, most similar first"
// @Failure 400 {object} ErrorResponse "missing payload, missing required field, unknown category, or no data for category"
// @Failure 413 {object} ErrorResponse "Body exceeds the size limit"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
			return
		}
		// An unreadable body is treated like an absent one.
		respondError(w, http.StatusBadRequest, recommend.ErrMissingPayload.Error())
		return
	}

	resp, err := h.recommender.Handle(r.Context(), body)
	if err != nil {
		if recommend.IsBadRequest(err) {
			respondError(w, http.StatusBadRequest, clientMessage(err))
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// badRequestErrors lists the client errors in precedence order.
var badRequestErrors = []error{
	recommend.ErrMissingPayload,
	recommend.ErrMissingField,
	recommend.ErrUnknownCategory,
	recommend.ErrNoDataForCategory,
}

// clientMessage returns the stable message for a recommendation error.
// Wrapped detail stays in the logs.
func clientMessage(err error) string {
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return msgInternalError
}
