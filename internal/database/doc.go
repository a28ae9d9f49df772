// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package database provides the MongoDB catalog source.
//
// # Overview
//
// MongoSource implements catalog.Source by reading every document of the
// configured collection, projected to the four catalog fields:
//
//	{restaurantId, name, category, priceLevel}   (_id excluded)
//
// Documents are returned in the order the server yields them. There is no
// sort: catalog row order is the store's natural order.
//
// # Decoding
//
// Documents are decoded from bson.Raw rather than into a struct so that
// restaurantId keeps its stored kind. String and ObjectID identifiers are
// echoed as JSON strings; integer, double and decimal identifiers as JSON
// numbers. A document with a field of an unsupported BSON type is skipped and
// counted in mongo_documents_decoded_total{result="error"}.
//
// # Circuit Breaker
//
// BreakerSource wraps any catalog.Source with a sony/gobreaker circuit
// breaker. The periodic reload service fetches through it so an unreachable
// store is probed at most once per open timeout:
//
//	src, err := database.NewMongoSource(ctx, &cfg.Mongo)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("mongo unavailable")
//	}
//	reloadSrc := database.NewBreakerSource(src, database.DefaultBreakerConfig())
//
// The startup load uses MongoSource directly: a failure there is fatal.
//
// # Metrics
//
//   - mongo_query_duration_seconds{operation,collection}
//   - mongo_query_errors_total{operation,collection,error_type}
//   - circuit_breaker_state{name}
//
// # Testing
//
// Unit tests cover decoding and breaker behaviour. Integration tests run
// against a testcontainers MongoDB and need the integration build tag.
package database
