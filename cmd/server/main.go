// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/pickrec/docs" // Import generated swagger docs
	"github.com/tomtom215/pickrec/internal/api"
	"github.com/tomtom215/pickrec/internal/config"
	"github.com/tomtom215/pickrec/internal/database"
	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/metrics"
	"github.com/tomtom215/pickrec/internal/recommend"
	"github.com/tomtom215/pickrec/internal/supervisor"
	"github.com/tomtom215/pickrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("database", cfg.Mongo.Database).
		Str("collection", cfg.Mongo.Collection).
		Int("top_k", cfg.Recommend.TopK).
		Msg("Starting Pickrec")

	if cfg.Mongo.URI == config.DefaultMongoURI {
		logging.Warn().Msg("Using default MongoDB URI; set MONGO_URI outside local development")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := database.NewMongoSource(ctx, &cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	holder, err := initIndex(ctx, cfg, store)
	if err != nil {
		// Close the client before fatal exit since defers do not run
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = store.Close(closeCtx)
		closeCancel()
		logging.Fatal().Err(err).Msg("Failed to build similarity index")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	initReload(cfg, holder, store, logging.WithComponent("reload"), tree)

	recommender := recommend.NewService(holder, recommend.Config{TopK: cfg.Recommend.TopK})
	handler := api.NewHandler(recommender, holder)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
