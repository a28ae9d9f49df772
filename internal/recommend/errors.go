// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import "errors"

// Lookup preconditions, checked in this order. All of them are client errors.
var (
	// ErrMissingPayload means the body was empty, not JSON, not an object,
	// or carried fields of the wrong JSON type.
	ErrMissingPayload = errors.New("missing payload")

	// ErrMissingField means guestId or preferences was absent, null or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownCategory means no catalog record has the requested category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNoDataForCategory means the category is known but no similarity row
	// could be resolved for it, or no index has been published yet.
	ErrNoDataForCategory = errors.New("no data for category")
)

// IsBadRequest reports whether err is one of the lookup precondition errors.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrMissingPayload) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrNoDataForCategory)
}

// Outcome returns the metric label for err.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingPayload):
		return "missing_payload"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, ErrNoDataForCategory):
		return "no_data"
	default:
		return "error"
	}
}
