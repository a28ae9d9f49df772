// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package api provides the HTTP surface for Pickrec.

Routes:

	POST /recommend       recommendations for a guest's preferred category
	GET  /health/live     liveness, always 200
	GET  /health/ready    200 once a similarity index is published, 503 before
	GET  /metrics         Prometheus exposition
	GET  /swagger/*       Swagger UI and doc.json

# Recommend

The request body is read in full (bounded by DefaultMaxBodyBytes) and handed
to a Recommender, normally *recommend.Service. Client mistakes map to 400
with a stable message:

	{"error": "missing payload"}
	{"error": "missing required field"}
	{"error": "unknown category"}
	{"error": "no data for category"}

Any other error is logged with the request ID and answered with a generic
500. Oversized bodies get 413.

# Middleware

SetupChi installs RealIP, request IDs, Prometheus instrumentation, access
logging, panic recovery and CORS globally. /recommend is additionally rate
limited per client IP through go-chi/httprate; ChiMiddlewareConfig carries
the CORS and rate-limit settings, built from config.SecurityConfig by
NewChiMiddlewareConfig.

All JSON encoding uses goccy/go-json.
*/
package api
