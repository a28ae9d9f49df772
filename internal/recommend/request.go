// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pickrec/internal/validation"
)

// Request is a decoded recommendation request.
type Request struct {
	// GuestID is the raw JSON of the guestId field, a string or a number.
	// It is echoed back verbatim and never interpreted.
	GuestID json.RawMessage `json:"guestId" validate:"required"`

	// Preferences is the requested category, matched exactly.
	Preferences string `json:"preferences" validate:"required"`
}

// DecodeRequest parses a request body.
//
// An empty body, invalid JSON, a non-object, an empty object, or a field
// of the wrong JSON type yields ErrMissingPayload. A guestId or
// preferences that is absent, null or the empty string yields
// ErrMissingField.
func DecodeRequest(body []byte) (Request, error) {
	var req Request

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, fmt.Errorf("%w: empty body", ErrMissingPayload)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, fmt.Errorf("%w: %s", ErrMissingPayload, "body is not a JSON object")
	}
	if len(fields) == 0 {
		return req, fmt.Errorf("%w: empty object", ErrMissingPayload)
	}

	guestID, err := decodeGuestID(fields["guestId"])
	if err != nil {
		return req, err
	}
	req.GuestID = guestID

	prefs, err := decodePreferences(fields["preferences"])
	if err != nil {
		return req, err
	}
	req.Preferences = prefs

	if verr := validation.ValidateStruct(&req); verr != nil {
		return req, fmt.Errorf("%w: %s", ErrMissingField, verr.Error())
	}
	return req, nil
}

// decodeGuestID accepts a JSON string or number. Absent, null and "" are
// returned as nil so the required rule reports them.
func decodeGuestID(raw json.RawMessage) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: guestId: %s", ErrMissingPayload, err.Error())
		}
		if s == "" {
			return nil, nil
		}
	case c == '-' || (c >= '0' && c <= '9'):
	default:
		return nil, fmt.Errorf("%w: guestId must be a string or number", ErrMissingPayload)
	}

	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, nil
}

func decodePreferences(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] != '"' {
		return "", fmt.Errorf("%w: preferences must be a string", ErrMissingPayload)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: preferences: %s", ErrMissingPayload, err.Error())
	}
	return s, nil
}
