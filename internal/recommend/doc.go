// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package recommend implements content-based restaurant recommendations.
//
// # Model
//
// Each catalog record contributes one feature string, its category and price
// level joined by a space. Build fits a TF-IDF vectorizer over all feature
// strings and computes the full pairwise cosine similarity matrix eagerly.
// Nothing is computed per request beyond a row sort.
//
// # Lookup
//
// A request names a category. The first catalog row carrying that category
// (lowest row index) is the query row. Every other row is ranked by its
// similarity to the query row, highest first, with ties broken by row index.
// The top K rows are returned (K defaults to 5).
//
// Lookups fail with one of four client errors, checked in order:
//
//   - ErrMissingPayload: body empty, not a JSON object, or wrongly typed fields
//   - ErrMissingField: guestId or preferences absent or empty
//   - ErrUnknownCategory: no record has the category
//   - ErrNoDataForCategory: no similarity row resolvable for the category
//
// # Concurrency
//
// An Index is immutable. Holder publishes indexes through an atomic pointer,
// so request handlers read without locks and a reload never exposes a catalog
// paired with another catalog's matrix.
//
// # Usage
//
//	cat, err := catalog.Load(ctx, source)
//	ix, err := recommend.Build(ctx, cat)
//
//	holder := recommend.NewHolder()
//	holder.Publish(ix)
//
//	svc := recommend.NewService(holder, recommend.DefaultConfig())
//	resp, err := svc.Handle(ctx, body)
package recommend
