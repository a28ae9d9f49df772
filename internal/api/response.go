// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pickrec/internal/logging"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"unknown category"`
}

// Client-facing error messages for failures that are not recommendation
// preconditions.
const (
	msgPayloadTooLarge  = "payload too large"
	msgInternalError    = "internal server error"
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
	msgRateLimited      = "rate limit exceeded"
)

// respondJSON writes v as JSON with the given status code.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message} with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &ErrorResponse{Error: message})
}
