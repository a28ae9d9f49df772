// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}

type payload struct {
	GuestID     []byte `json:"guestId" validate:"required"`
	Preferences string `json:"preferences" validate:"required"`
}

func TestValidateStruct_Required(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         payload
		wantFields []string
	}{
		{"valid", payload{GuestID: []byte(`1`), Preferences: "korean"}, nil},
		{"missing guest", payload{Preferences: "korean"}, []string{"guestId"}},
		{"missing preferences", payload{GuestID: []byte(`"g"`)}, []string{"preferences"}},
		{"missing both", payload{}, []string{"guestId", "preferences"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.in)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Fields) != len(tt.wantFields) {
				t.Fatalf("got %d field errors, want %d: %v", len(err.Fields), len(tt.wantFields), err)
			}
			for i, want := range tt.wantFields {
				if err.Fields[i].Field != want {
					t.Errorf("Fields[%d].Field = %q, want %q", i, err.Fields[i].Field, want)
				}
				if err.Fields[i].Message != want+" is required" {
					t.Errorf("Fields[%d].Message = %q", i, err.Fields[i].Message)
				}
			}
			if !err.HasTag("required") {
				t.Error("HasTag(required) = false")
			}
		})
	}
}

type mongoSettings struct {
	URI  string `koanf:"uri" validate:"required,mongodb_uri"`
	TopK int    `koanf:"top_k" validate:"gte=1"`
}

func TestValidateStruct_MongoURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri   string
		valid bool
	}{
		{"mongodb://localhost:27017", true},
		{"mongodb+srv://cluster0.example.net", true},
		{"mongodb://", false},
		{"postgres://localhost", false},
		{"localhost:27017", false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&mongoSettings{URI: tt.uri, TopK: 5})
			if tt.valid && err != nil {
				t.Errorf("ValidateStruct(%q) = %v, want nil", tt.uri, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("ValidateStruct(%q) = nil, want error", tt.uri)
				}
				if err.Fields[0].Field != "uri" {
					t.Errorf("Field = %q, want uri (koanf tag)", err.Fields[0].Field)
				}
			}
		})
	}
}

func TestValidateStruct_ParamMessage(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&mongoSettings{URI: "mongodb://db", TopK: 0})
	if err == nil {
		t.Fatal("expected error for top_k=0")
	}
	if !strings.Contains(err.Error(), "top_k must be greater than or equal to 1") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestError_EmptyMessage(t *testing.T) {
	t.Parallel()

	if got := (&Error{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q, want %q", got, "validation failed")
	}
}
