// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

type stubSource struct {
	records []Record
	err     error
}

func (s *stubSource) FetchRestaurants(_ context.Context) ([]Record, error) {
	return s.records, s.err
}

func sampleRecords() []Record {
	return []Record{
		{ID: NumberID("1"), Name: "Bibim House", Category: "korean", PriceLevel: "low"},
		{ID: NumberID("2"), Name: "Seoul Table", Category: "korean", PriceLevel: "low"},
		{ID: StringID("r-3"), Name: "Trattoria", Category: "italian", PriceLevel: "high"},
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	cat := New(records)

	if cat.Len() != len(records) {
		t.Fatalf("Len() = %d, want %d", cat.Len(), len(records))
	}
	for i := range records {
		if cat.At(i) != records[i] {
			t.Errorf("At(%d) = %+v, want %+v", i, cat.At(i), records[i])
		}
	}

	// Mutating the input must not leak into the catalog.
	records[0].Name = "changed"
	if cat.At(0).Name != "Bibim House" {
		t.Errorf("catalog shares backing array with input")
	}
}

func TestFirstIndexOf(t *testing.T) {
	t.Parallel()

	cat := New(sampleRecords())

	tests := []struct {
		category string
		wantRow  int
		wantOK   bool
	}{
		{"korean", 0, true},
		{"italian", 2, true},
		{"Korean", 0, false},
		{"", 0, false},
		{"mexican", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()
			row, ok := cat.FirstIndexOf(tt.category)
			if ok != tt.wantOK {
				t.Fatalf("FirstIndexOf(%q) ok = %v, want %v", tt.category, ok, tt.wantOK)
			}
			if ok && row != tt.wantRow {
				t.Errorf("FirstIndexOf(%q) = %d, want %d", tt.category, row, tt.wantRow)
			}
			if cat.HasCategory(tt.category) != tt.wantOK {
				t.Errorf("HasCategory(%q) = %v, want %v", tt.category, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestCatalog_Empty(t *testing.T) {
	t.Parallel()

	var nilCat *Catalog
	if nilCat.Len() != 0 || nilCat.HasCategory("korean") || nilCat.Categories() != 0 {
		t.Error("nil catalog should behave as empty")
	}

	cat := New(nil)
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
	if _, ok := cat.FirstIndexOf("korean"); ok {
		t.Error("empty catalog should not resolve any category")
	}
	if len(cat.Features()) != 0 {
		t.Error("empty catalog should have no features")
	}
}

func TestRecord_Features(t *testing.T) {
	t.Parallel()

	rec := Record{Category: "korean", PriceLevel: "low"}
	if got := rec.Features(); got != "korean low" {
		t.Errorf("Features() = %q, want %q", got, "korean low")
	}
	if !rec.Valid() {
		t.Error("record with category and price level should be valid")
	}
	if (Record{Category: "korean"}).Valid() {
		t.Error("record without price level should be invalid")
	}
}

func TestID_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"number", NumberID("42"), `42`},
		{"float", NumberID("4.5"), `4.5`},
		{"string", StringID("abc"), `"abc"`},
		{"string_with_quotes", StringID(`a"b`), `"a\"b"`},
		{"zero", ID{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	src := &stubSource{records: append(sampleRecords(),
		Record{ID: NumberID("4"), Name: "No Price", Category: "thai"},
		Record{ID: NumberID("5"), Name: "Taqueria", Category: "mexican", PriceLevel: "low"},
	)}

	cat, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cat.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (invalid record dropped)", cat.Len())
	}
	if cat.At(3).Name != "Taqueria" {
		t.Errorf("At(3) = %q, want Taqueria (order preserved after drop)", cat.At(3).Name)
	}
	if cat.HasCategory("thai") {
		t.Error("dropped record's category should not be indexed")
	}
}

func TestLoad_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	cat, err := Load(context.Background(), &stubSource{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
}

func TestLoad_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	_, err := Load(context.Background(), &stubSource{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Load error = %v, want wrapped %v", err, boom)
	}
}
