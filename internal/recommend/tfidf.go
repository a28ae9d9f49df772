// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"math"
	"sort"
)

// Vectorizer maps feature strings into a TF-IDF vector space.
//
// The vocabulary and inverse document frequencies are fixed by FitVectorizer
// and never change afterwards; terms unseen at fit time are ignored by
// Transform.
//
// Weighting:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each document vector is L2-normalized
type Vectorizer struct {
	vocabulary map[string]int // term -> column
	terms      []string       // column -> term, sorted
	idf        []float64      // column -> idf
}

// sparseVector holds the non-zero entries of a document vector, sorted by column.
type sparseVector struct {
	cols   []int
	values []float64
}

// FitVectorizer learns the vocabulary and document frequencies of docs.
func FitVectorizer(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
	}
	for col, term := range terms {
		v.vocabulary[term] = col
		v.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// VocabularySize returns the number of distinct terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// IDF returns the inverse document frequency of term and whether it is in the vocabulary.
func (v *Vectorizer) IDF(term string) (float64, bool) {
	col, ok := v.vocabulary[term]
	if !ok {
		return 0, false
	}
	return v.idf[col], true
}

// Transform returns the L2-normalized TF-IDF vector of doc. A document with
// no known terms yields the zero vector.
func (v *Vectorizer) Transform(doc string) sparseVector {
	counts := make(map[int]int)
	for _, term := range Tokenize(doc) {
		if col, ok := v.vocabulary[term]; ok {
			counts[col]++
		}
	}

	vec := sparseVector{
		cols:   make([]int, 0, len(counts)),
		values: make([]float64, 0, len(counts)),
	}
	for col := range counts {
		vec.cols = append(vec.cols, col)
	}
	sort.Ints(vec.cols)

	var norm float64
	for _, col := range vec.cols {
		w := float64(counts[col]) * v.idf[col]
		vec.values = append(vec.values, w)
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.values {
			vec.values[i] /= norm
		}
	}
	return vec
}

// dot returns the inner product of two column-sorted sparse vectors.
func (a sparseVector) dot(b sparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.cols) && j < len(b.cols) {
		switch {
		case a.cols[i] == b.cols[j]:
			sum += a.values[i] * b.values[j]
			i++
			j++
		case a.cols[i] < b.cols[j]:
			i++
		default:
			j++
		}
	}
	return sum
}
