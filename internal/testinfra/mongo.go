// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoImage is the MongoDB image used for integration tests
const DefaultMongoImage = "mongo:7.0"

// MongoContainer represents a running MongoDB container for testing.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	URI string
}

// MongoOption configures the MongoDB container.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	image string
}

// WithMongoImage sets a custom MongoDB Docker image.
func WithMongoImage(image string) MongoOption {
	return func(c *mongoConfig) {
		c.image = image
	}
}

// NewMongoContainer starts a standalone MongoDB server and returns its
// connection string.
func NewMongoContainer(ctx context.Context, opts ...MongoOption) (*MongoContainer, error) {
	cfg := &mongoConfig{image: DefaultMongoImage}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := mongodb.Run(ctx, cfg.image)
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mongo connection string: %w", err)
	}

	return &MongoContainer{MongoDBContainer: container, URI: uri}, nil
}

// Seed inserts docs into database.collection in the given order.
func (c *MongoContainer) Seed(ctx context.Context, database, collection string, docs []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return fmt.Errorf("failed to connect for seeding: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if len(docs) == 0 {
		return client.Database(database).CreateCollection(ctx, collection)
	}
	if _, err := client.Database(database).Collection(collection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed %s.%s: %w", database, collection, err)
	}
	return nil
}
