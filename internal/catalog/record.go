// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package catalog

import (
	"github.com/goccy/go-json"
)

// ID is an opaque restaurant identifier.
//
// The store may hold identifiers as strings or numbers; ID keeps the text
// together with its kind so responses echo the identifier in the same JSON
// type it was stored with. The zero ID marshals as null.
type ID struct {
	text   string
	number bool
	set    bool
}

// StringID returns an identifier that marshals as a JSON string.
func StringID(s string) ID {
	return ID{text: s, set: true}
}

// NumberID returns an identifier that marshals as a JSON number.
// The caller is responsible for passing a valid JSON number literal.
func NumberID(literal string) ID {
	return ID{text: literal, number: true, set: true}
}

// String returns the identifier text.
func (id ID) String() string {
	return id.text
}

// IsNumber reports whether the identifier was stored as a number.
func (id ID) IsNumber() bool {
	return id.number
}

// IsZero reports whether no identifier was present in the source document.
func (id ID) IsZero() bool {
	return !id.set
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case !id.set:
		return []byte("null"), nil
	case id.number:
		return []byte(id.text), nil
	default:
		return json.Marshal(id.text)
	}
}

// Record is one restaurant row of the catalog.
type Record struct {
	// ID is the store's restaurantId.
	ID ID `json:"restaurantId"`

	// Name is the display name.
	Name string `json:"name"`

	// Category is the cuisine category, matched exactly by lookups.
	Category string `json:"category"`

	// PriceLevel is the price bucket (e.g. "low", "high").
	PriceLevel string `json:"priceLevel"`
}

// Features returns the text the similarity index vectorizes for this record:
// the category and price level separated by a single space.
func (r Record) Features() string {
	return r.Category + " " + r.PriceLevel
}

// Valid reports whether the record carries the attributes the index needs.
func (r Record) Valid() bool {
	return r.Category != "" && r.PriceLevel != ""
}
