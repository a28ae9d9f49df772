// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/config"
	"github.com/tomtom215/pickrec/internal/database"
	"github.com/tomtom215/pickrec/internal/recommend"
	"github.com/tomtom215/pickrec/internal/supervisor"
	"github.com/tomtom215/pickrec/internal/supervisor/services"
)

// initIndex performs the blocking startup load. The caller must not start
// serving until it returns nil.
func initIndex(ctx context.Context, cfg *config.Config, src catalog.Source) (*recommend.Holder, error) {
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.QueryTimeout)
	defer cancel()

	holder := recommend.NewHolder()
	if err := holder.Refresh(loadCtx, src); err != nil {
		return nil, fmt.Errorf("initial index build: %w", err)
	}
	return holder, nil
}

// initReload adds the catalog reload service to the data layer when a
// reload interval is configured. Reloads go through a circuit breaker so an
// unreachable store is not queried on every tick.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initReload(cfg *config.Config, holder *recommend.Holder, src catalog.Source, logger zerolog.Logger, tree *supervisor.SupervisorTree) *services.ReloadService {
	if !cfg.Recommend.ReloadEnabled() {
		logger.Info().Msg("catalog reload disabled (RECOMMEND_RELOAD_INTERVAL=0)")
		return nil
	}

	breaker := database.NewBreakerSource(src, database.DefaultBreakerConfig())
	svc := services.NewReloadService(holder, breaker, services.ReloadServiceConfig{
		Interval: cfg.Recommend.ReloadInterval,
		Timeout:  cfg.Mongo.QueryTimeout,
	}, logger)

	tree.AddDataService(svc)
	logger.Info().
		Dur("interval", cfg.Recommend.ReloadInterval).
		Str("breaker", breaker.Name()).
		Msg("catalog reload service added to supervisor tree")

	return svc
}
