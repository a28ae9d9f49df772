// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package catalog

// Catalog is an ordered, read-only snapshot of restaurant records.
// It is safe for concurrent use because nothing mutates it after New.
type Catalog struct {
	records []Record

	// firstRow maps a category to the lowest row index carrying it.
	firstRow map[string]int
}

// New builds a catalog from records, preserving their order.
// The slice is copied; later changes to it do not affect the catalog.
func New(records []Record) *Catalog {
	owned := make([]Record, len(records))
	copy(owned, records)

	firstRow := make(map[string]int, len(owned))
	for i, rec := range owned {
		if _, seen := firstRow[rec.Category]; !seen {
			firstRow[rec.Category] = i
		}
	}

	return &Catalog{
		records:  owned,
		firstRow: firstRow,
	}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at row i. It panics if i is out of range,
// like a slice index.
func (c *Catalog) At(i int) Record {
	return c.records[i]
}

// Features returns the feature string of every record in row order.
func (c *Catalog) Features() []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.records[i].Features()
	}
	return out
}

// HasCategory reports whether at least one record has exactly this category.
// Matching is case-sensitive.
func (c *Catalog) HasCategory(category string) bool {
	if c == nil {
		return false
	}
	_, ok := c.firstRow[category]
	return ok
}

// FirstIndexOf returns the lowest row index whose category equals category.
// Ties between several matching rows are always broken by catalog order.
func (c *Catalog) FirstIndexOf(category string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.firstRow[category]
	return i, ok
}

// Categories returns the number of distinct categories.
func (c *Catalog) Categories() int {
	if c == nil {
		return 0
	}
	return len(c.firstRow)
}
