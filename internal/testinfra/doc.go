// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests,
// providing realistic testing environments that closely match production.
//
// # MongoDB Container
//
// The MongoContainer runs a real MongoDB server for testing the catalog source:
//
//	func TestFetchRestaurants(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    mc, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mc)
//
//	    err = mc.Seed(ctx, "recommend", "like", []interface{}{
//	        bson.D{{Key: "restaurantId", Value: "r1"}, {Key: "category", Value: "korean"}},
//	    })
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker and the integration build tag:
//
//	go test -tags integration ./...
//
// Tests are skipped gracefully if Docker is unavailable. The first run may
// need to download the MongoDB image.
package testinfra
