// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// Source fetches every restaurant document in a single bulk read.
// Implementations return records in the store's natural order.
type Source interface {
	FetchRestaurants(ctx context.Context) ([]Record, error)
}

// Load fetches all records from src and builds a Catalog.
//
// Records missing a category or price level cannot be vectorized and are
// dropped with a warning; the remaining records keep their relative order.
// An empty result is not an error.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	start := time.Now()

	records, err := src.FetchRestaurants(ctx)
	if err != nil {
		metrics.CatalogLoadErrors.Inc()
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}

	kept := make([]Record, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if !rec.Valid() {
			skipped++
			continue
		}
		kept = append(kept, rec)
	}

	if skipped > 0 {
		logging.Warn().
			Int("skipped", skipped).
			Msg("dropped restaurants without category or price level")
	}

	cat := New(kept)
	metrics.CatalogRecords.Set(float64(cat.Len()))

	logging.Info().
		Int("records", cat.Len()).
		Int("categories", cat.Categories()).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")

	return cat, nil
}
