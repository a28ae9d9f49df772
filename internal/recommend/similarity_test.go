// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"context"
	"errors"
	"math"
	"testing"
)

func buildMatrix(t *testing.T, docs []string) *SimilarityMatrix {
	t.Helper()

	m, err := newSimilarityMatrix(context.Background(), FitVectorizer(docs), docs)
	if err != nil {
		t.Fatalf("newSimilarityMatrix: %v", err)
	}
	return m
}

func TestSimilarityMatrix_Properties(t *testing.T) {
	t.Parallel()

	docs := []string{
		"korean low",
		"korean low",
		"italian high",
		"korean high",
		"japanese mid",
		"italian low",
		"",
		"chinese mid",
		"korean low",
	}
	m := buildMatrix(t, docs)

	if m.Size() != len(docs) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(docs))
	}

	for i := 0; i < m.Size(); i++ {
		if m.At(i, i) != 1 {
			t.Errorf("diagonal At(%d,%d) = %v, want 1", i, i, m.At(i, i))
		}
		for j := 0; j < m.Size(); j++ {
			s := m.At(i, j)
			if s < 0 || s > 1 {
				t.Errorf("At(%d,%d) = %v outside [0,1]", i, j, s)
			}
			if s != m.At(j, i) {
				t.Errorf("At(%d,%d) = %v, At(%d,%d) = %v, want symmetric", i, j, s, j, i, m.At(j, i))
			}
		}
	}
}

func TestSimilarityMatrix_Values(t *testing.T) {
	t.Parallel()

	docs := []string{"korean low", "korean high", "italian high"}
	m := buildMatrix(t, docs)

	n := 3.0
	idfKorean := math.Log((1+n)/(1+2)) + 1
	idfLow := math.Log((1+n)/(1+1)) + 1
	idfHigh := math.Log((1+n)/(1+2)) + 1
	idfItalian := math.Log((1+n)/(1+1)) + 1

	norm0 := math.Sqrt(idfKorean*idfKorean + idfLow*idfLow)
	norm1 := math.Sqrt(idfKorean*idfKorean + idfHigh*idfHigh)
	norm2 := math.Sqrt(idfItalian*idfItalian + idfHigh*idfHigh)

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 1, idfKorean * idfKorean / (norm0 * norm1)},
		{1, 2, idfHigh * idfHigh / (norm1 * norm2)},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := m.At(tt.i, tt.j); math.Abs(got-tt.want) > epsilon {
			t.Errorf("At(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestSimilarityMatrix_Empty(t *testing.T) {
	t.Parallel()

	m := buildMatrix(t, nil)
	if m.Size() != 0 {
		t.Errorf("Size() = %d, want 0", m.Size())
	}

	var nilMatrix *SimilarityMatrix
	if nilMatrix.Size() != 0 {
		t.Errorf("nil Size() = %d, want 0", nilMatrix.Size())
	}
}

func TestSimilarityMatrix_ZeroVectorRows(t *testing.T) {
	t.Parallel()

	// "a b" tokenizes to nothing, so both rows are zero vectors.
	m := buildMatrix(t, []string{"a b", "a b", "korean low"})

	if m.At(0, 0) != 1 || m.At(1, 1) != 1 {
		t.Error("zero-vector rows should keep a unit diagonal")
	}
	if m.At(0, 1) != 0 || m.At(0, 2) != 0 {
		t.Errorf("zero-vector row similarities = %v, %v, want 0", m.At(0, 1), m.At(0, 2))
	}
}

func TestSimilarityMatrix_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []string{"korean low", "italian high"}
	_, err := newSimilarityMatrix(ctx, FitVectorizer(docs), docs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestClampUnit(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want float64 }{
		{-0.1, 0},
		{0, 0},
		{0.5, 0.5},
		{1.0000000000000002, 1},
	}
	for _, tt := range tests {
		if got := clampUnit(tt.in); got != tt.want {
			t.Errorf("clampUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkSimilarityMatrix(b *testing.B) {
	categories := []string{"korean", "italian", "japanese", "chinese", "mexican", "thai", "french"}
	prices := []string{"low", "mid", "high"}

	docs := make([]string, 2000)
	for i := range docs {
		docs[i] = categories[i%len(categories)] + " " + prices[i%len(prices)]
	}
	v := FitVectorizer(docs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newSimilarityMatrix(context.Background(), v, docs); err != nil {
			b.Fatal(err)
		}
	}
}
