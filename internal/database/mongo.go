// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/config"
	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// appName identifies this service in MongoDB server logs and currentOp.
const appName = "pickrec"

// restaurantProjection limits fetched documents to the catalog fields.
var restaurantProjection = bson.D{
	{Key: "_id", Value: 0},
	{Key: "restaurantId", Value: 1},
	{Key: "name", Value: 1},
	{Key: "category", Value: 1},
	{Key: "priceLevel", Value: 1},
}

// MongoSource reads restaurant documents from a MongoDB collection.
// It implements catalog.Source.
type MongoSource struct {
	client     *mongo.Client
	collection *mongo.Collection
	cfg        *config.MongoConfig
}

// NewMongoSource connects to MongoDB and verifies the connection with a ping
// against the primary. Any failure is returned; the caller decides whether it
// is fatal.
func NewMongoSource(ctx context.Context, cfg *config.MongoConfig) (*MongoSource, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName(appName)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	src := &MongoSource{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:        cfg,
	}

	if err := src.Ping(ctx); err != nil {
		disconnectQuietly(client)
		return nil, err
	}

	logging.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongo")

	return src, nil
}

// Ping checks that the primary is reachable within the connect timeout.
func (s *MongoSource) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()

	start := time.Now()
	err := s.client.Ping(ctx, readpref.Primary())
	metrics.RecordStoreQuery("ping", s.cfg.Collection, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}
	return nil
}

// FetchRestaurants returns every document of the configured collection in the
// order the server yields them. Documents whose fields cannot be decoded are
// skipped and counted; a cursor or query failure aborts the whole fetch.
func (s *MongoSource) FetchRestaurants(ctx context.Context) ([]catalog.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	records, err := s.fetch(ctx)
	metrics.RecordStoreQuery("find", s.cfg.Collection, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MongoSource) fetch(ctx context.Context) ([]catalog.Record, error) {
	cursor, err := s.collection.Find(ctx, bson.D{}, options.Find().SetProjection(restaurantProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.cfg.Collection, err)
	}
	defer func() {
		if cerr := cursor.Close(context.WithoutCancel(ctx)); cerr != nil {
			logging.Warn().Err(cerr).Msg("failed to close mongo cursor")
		}
	}()

	var records []catalog.Record
	position := 0
	for cursor.Next(ctx) {
		rec, err := recordFromRaw(cursor.Current)
		if err != nil {
			metrics.StoreDocumentsDecoded.WithLabelValues("error").Inc()
			logging.Warn().
				Err(err).
				Int("position", position).
				Msg("skipping undecodable restaurant document")
		} else {
			metrics.StoreDocumentsDecoded.WithLabelValues("ok").Inc()
			records = append(records, rec)
		}
		position++
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", s.cfg.Collection, err)
	}

	return records, nil
}

// Close disconnects the client.
func (s *MongoSource) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	return nil
}

// disconnectQuietly releases a client on an error path where the disconnect
// result is not actionable.
func disconnectQuietly(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
