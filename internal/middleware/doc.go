// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package middleware provides HTTP middleware components for the application.

All middleware use the standard func(http.Handler) http.Handler shape so they
plug into a chi router with r.Use.

Key Components:

  - Request ID: X-Request-ID tracking for log correlation
  - Prometheus Metrics: request count, latency and in-flight gauge labelled by chi route pattern
  - Access Log: one structured entry per request, slow requests at warn level

Middleware Stack:

The router installs them in this order:

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)

RequestID must run before anything that logs, so log entries carry
request_id and correlation_id. Recoverer sits inside the metrics and access
log layers so a recovered panic is counted and logged as a 500.

Metrics Exposed:

  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
*/
package middleware
