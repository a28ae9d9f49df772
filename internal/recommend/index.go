// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/logging"
)

// Scored is a catalog row with its similarity to the query row.
type Scored struct {
	Row    int
	Score  float64
	Record catalog.Record
}

// Index bundles a catalog with the similarity matrix computed from it.
// Row i of the catalog is row and column i of the matrix. An Index is
// immutable and safe for concurrent readers.
type Index struct {
	catalog   *catalog.Catalog
	matrix    *SimilarityMatrix
	vocab     int
	builtAt   time.Time
	buildTime time.Duration
}

// Build vectorizes every catalog row and computes the full similarity matrix.
// It returns ctx.Err() if the context is cancelled mid-build.
func Build(ctx context.Context, cat *catalog.Catalog) (*Index, error) {
	start := time.Now()

	docs := cat.Features()
	vectorizer := FitVectorizer(docs)

	matrix, err := newSimilarityMatrix(ctx, vectorizer, docs)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	ix := &Index{
		catalog:   cat,
		matrix:    matrix,
		vocab:     vectorizer.VocabularySize(),
		builtAt:   time.Now(),
		buildTime: time.Since(start),
	}

	logging.Ctx(ctx).Info().
		Int("records", cat.Len()).
		Int("vocabulary", ix.vocab).
		Dur("duration", ix.buildTime).
		Msg("similarity index built")

	return ix, nil
}

// Catalog returns the indexed catalog.
func (ix *Index) Catalog() *catalog.Catalog {
	return ix.catalog
}

// Matrix returns the similarity matrix.
func (ix *Index) Matrix() *SimilarityMatrix {
	return ix.matrix
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.catalog.Len()
}

// VocabularySize returns the number of distinct feature terms.
func (ix *Index) VocabularySize() int {
	return ix.vocab
}

// BuiltAt returns when the build finished.
func (ix *Index) BuiltAt() time.Time {
	return ix.builtAt
}

// BuildDuration returns how long the build took.
func (ix *Index) BuildDuration() time.Duration {
	return ix.buildTime
}

// Recommend returns up to k rows most similar to the first row whose
// category equals category exactly. The query row itself is excluded.
// Results are ordered by descending score, then ascending row.
func (ix *Index) Recommend(category string, k int) ([]Scored, error) {
	if ix == nil {
		return nil, fmt.Errorf("%w: %q: index not ready", ErrNoDataForCategory, category)
	}

	row, ok := ix.catalog.FirstIndexOf(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if row < 0 || row >= ix.matrix.Size() {
		return nil, fmt.Errorf("%w: %q: row %d outside matrix of size %d",
			ErrNoDataForCategory, category, row, ix.matrix.Size())
	}

	scores := ix.matrix.Row(row)
	candidates := make([]Scored, 0, len(scores)-1)
	for j, s := range scores {
		if j == row {
			continue
		}
		candidates = append(candidates, Scored{Row: j, Score: s})
	}

	// Candidates are in ascending row order, so a stable sort keeps that as the tie-break.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	if k < 0 {
		k = 0
	}
	if k < len(candidates) {
		candidates = candidates[:k]
	}
	for i := range candidates {
		candidates[i].Record = ix.catalog.At(candidates[i].Row)
	}
	return candidates, nil
}
