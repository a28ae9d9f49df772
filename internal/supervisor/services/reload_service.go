// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// DefaultReloadInterval is used when ReloadServiceConfig.Interval is not positive.
const DefaultReloadInterval = time.Hour

// IndexRefresher rebuilds and publishes the similarity index from a source.
// *recommend.Holder satisfies it.
type IndexRefresher interface {
	Refresh(ctx context.Context, src catalog.Source) error
}

// ReloadServiceConfig holds configuration for the catalog reload service.
type ReloadServiceConfig struct {
	// Interval between reloads.
	Interval time.Duration

	// Timeout bounds a single fetch and build. Defaults to Interval.
	Timeout time.Duration
}

// ReloadService periodically refetches the catalog and publishes a new
// index. A failed reload is logged and counted; the previous index keeps
// serving.
type ReloadService struct {
	refresher IndexRefresher
	source    catalog.Source
	config    ReloadServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewReloadService creates a reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(refresher IndexRefresher, src catalog.Source, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultReloadInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	return &ReloadService{
		refresher: refresher,
		source:    src,
		config:    cfg,
		logger:    logger.With().Str("service", "catalog-reload").Logger(),
		name:      "catalog-reload",
	}
}

// Serve implements suture.Service. The first reload happens one interval
// after start, since the startup load has already published an index.
func (s *ReloadService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Msg("catalog reload service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.reload(ctx)
		}
	}
}

func (s *ReloadService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	err := s.refresher.Refresh(reloadCtx, s.source)
	metrics.RecordReload(err)

	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous index")
		return
	}

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
}

// String returns the service name for logging.
func (s *ReloadService) String() string {
	return s.name
}
