// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/pickrec/internal/metrics"
)

// LiveResponse is the liveness probe body.
type LiveResponse struct {
	Status string  `json:"status" example:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadyResponse is the readiness probe body.
type ReadyResponse struct {
	Status         string     `json:"status" example:"ready"`
	Records        int        `json:"records"`
	VocabularySize int        `json:"vocabulary_size"`
	BuiltAt        *time.Time `json:"built_at,omitempty"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK while the process is running.
// @Tags Health
// @Produce json
// @Success 200 {object} LiveResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime).Seconds()
	metrics.AppUptime.Set(uptime)
	respondJSON(w, http.StatusOK, &LiveResponse{
		Status: "alive",
		Uptime: uptime,
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once a similarity index has been published
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 with catalog size once the similarity index is published, 503 before.
// @Tags Health
// @Produce json
// @Success 200 {object} ReadyResponse "Index published"
// @Failure 503 {object} ReadyResponse "Index not yet built"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ix := h.holder.Load()
	if ix == nil {
		respondJSON(w, http.StatusServiceUnavailable, &ReadyResponse{Status: "not_ready"})
		return
	}

	builtAt := ix.BuiltAt()
	respondJSON(w, http.StatusOK, &ReadyResponse{
		Status:         "ready",
		Records:        ix.Len(),
		VocabularySize: ix.VocabularySize(),
		BuiltAt:        &builtAt,
	})
}
