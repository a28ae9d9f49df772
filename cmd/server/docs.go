// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package main provides the Pickrec HTTP server
//
// @title Pickrec API
// @version 1.0
// @description Content-based restaurant recommendations from a TF-IDF similarity index over category and price level.
// @description
// @description ## Errors
// @description
// @description Client errors return HTTP 400 with a single message:
// @description ```json
// @description {"error": "unknown category"}
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit on /recommend: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/pickrec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Recommendations
// @tag.description Restaurant recommendations by preferred category
package main
