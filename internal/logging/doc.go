// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package logging provides centralized zerolog-based logging for Pickrec.
//
// A single global logger is configured once from main and used by every
// package. JSON is the default output; console output is available for local
// development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("records", n).Msg("catalog loaded")
//	logging.Error().Err(err).Msg("reload failed")
//
//	// Request scoped, picks up request_id from the middleware
//	logging.Ctx(ctx).Warn().Str("category", c).Msg("unknown category")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false, include caller info (default: false)
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept an
// *slog.Logger, such as sutureslog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(). Use structured fields
// instead of formatted strings.
package logging
