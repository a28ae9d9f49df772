// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/pickrec/internal/recommend"
)

// DefaultMaxBodyBytes caps /recommend request bodies.
const DefaultMaxBodyBytes int64 = 64 << 10

// Recommender answers a raw /recommend request body.
// recommend.Service is the production implementation.
type Recommender interface {
	Handle(ctx context.Context, body []byte) (*recommend.Response, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: POST /recommend
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	recommender  Recommender
	holder       *recommend.Holder
	startTime    time.Time
	maxBodyBytes int64
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - recommender: answers recommendation requests
//   - holder: the published similarity index, read by the readiness probe
func NewHandler(recommender Recommender, holder *recommend.Holder) *Handler {
	return &Handler{
		recommender:  recommender,
		holder:       holder,
		startTime:    time.Now(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// SetMaxBodyBytes overrides the request body limit. Non-positive values are ignored.
func (h *Handler) SetMaxBodyBytes(n int64) {
	if n > 0 {
		h.maxBodyBytes = n
	}
}
