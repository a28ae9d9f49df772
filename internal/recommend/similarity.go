// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"context"
)

// SimilarityMatrix is a dense N×N cosine similarity matrix stored row-major.
// It is symmetric, every entry is in [0, 1] and the diagonal is 1.
// A SimilarityMatrix is immutable once built.
type SimilarityMatrix struct {
	n    int
	data []float64
}

// Size returns N.
func (m *SimilarityMatrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns the similarity between rows i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i. The returned slice aliases the matrix and must not be modified.
func (m *SimilarityMatrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// newSimilarityMatrix computes pairwise cosine similarity of L2-normalized
// vectors. Rows with identical feature strings share a vector, so dot
// products are computed once per distinct pair and fanned out.
func newSimilarityMatrix(ctx context.Context, v *Vectorizer, docs []string) (*SimilarityMatrix, error) {
	n := len(docs)
	m := &SimilarityMatrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m, nil
	}

	// Map every row to a distinct document.
	distinct := make(map[string]int)
	var vectors []sparseVector
	rowDoc := make([]int, n)
	for i, doc := range docs {
		id, ok := distinct[doc]
		if !ok {
			id = len(vectors)
			distinct[doc] = id
			vectors = append(vectors, v.Transform(doc))
		}
		rowDoc[i] = id
	}

	u := len(vectors)
	pair := make([]float64, u*u)
	for a := 0; a < u; a++ {
		for b := a; b < u; b++ {
			s := clampUnit(vectors[a].dot(vectors[b]))
			pair[a*u+b] = s
			pair[b*u+a] = s
		}
	}

	for i := 0; i < n; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row := m.data[i*n : (i+1)*n]
		base := rowDoc[i] * u
		for j := 0; j < n; j++ {
			row[j] = pair[base+rowDoc[j]]
		}
		row[i] = 1
	}

	return m, nil
}

// clampUnit pins floating point drift back into [0, 1].
func clampUnit(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
