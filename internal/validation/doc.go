// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built lazily and shared; it caches struct
// metadata, so it is cheap to call on every request. Error field names follow
// the json tag (request payloads) or the koanf tag (configuration) so that
// messages match what the caller actually sent.
//
// Custom rules:
//   - mongodb_uri: value starts with mongodb:// or mongodb+srv://
//
// Usage:
//
//	type recommendInput struct {
//	    GuestID     json.RawMessage `json:"guestId" validate:"required"`
//	    Preferences string          `json:"preferences" validate:"required"`
//	}
//
//	if err := validation.ValidateStruct(&in); err != nil {
//	    // err.Fields[0].Message == "guestId is required"
//	}
package validation
