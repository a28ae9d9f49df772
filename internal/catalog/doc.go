// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package catalog holds the in-memory restaurant catalog.
//
// A Catalog is an ordered, immutable sequence of Records. The position a
// record receives at load time is its row index everywhere else in the
// service: the similarity index addresses matrix rows and columns by the
// same index, so a Catalog is never reordered or appended to after Load.
//
// # Loading
//
// Records come from a Source (the MongoDB store in production):
//
//	cat, err := catalog.Load(ctx, source)
//	if err != nil {
//	    // store unreachable: fatal at startup
//	}
//	if cat.Len() == 0 {
//	    // not an error; every lookup will report an unknown category
//	}
//
// Load performs exactly one fetch. It does not retry and does not paginate.
package catalog
