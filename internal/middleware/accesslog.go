// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/pickrec/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests are logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one structured entry per request through the request-scoped
// logger, so entries carry the request and correlation IDs. Requests slower
// than threshold are logged at warn level; the rest at debug.
func AccessLog(threshold time.Duration) func(http.Handler) http.Handler {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "request completed"
			if duration > threshold {
				event = logger.Warn().Dur("threshold", threshold)
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg(msg)
		})
	}
}
