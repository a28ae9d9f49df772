// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package database

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// BreakerConfig tunes the circuit breaker in front of a catalog source.
type BreakerConfig struct {
	// Name labels metrics and log entries.
	Name string

	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold uint32

	// OpenTimeout is how long the circuit stays open before a trial fetch.
	OpenTimeout time.Duration
}

// DefaultBreakerConfig returns the settings used for periodic reloads.
// Reloads are infrequent, so a short run of failures is enough to back off.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "mongo-catalog",
		FailureThreshold: 3,
		OpenTimeout:      2 * time.Minute,
	}
}

// BreakerSource wraps a catalog.Source with a circuit breaker so a store that
// keeps failing is not queried on every reload tick.
type BreakerSource struct {
	src  catalog.Source
	cb   *gobreaker.CircuitBreaker[[]catalog.Record]
	name string
}

// NewBreakerSource wraps src. Zero fields in cfg fall back to DefaultBreakerConfig.
func NewBreakerSource(src catalog.Source, cfg BreakerConfig) *BreakerSource {
	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]catalog.Record](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= threshold
			if shouldTrip {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A cancelled fetch says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().
				Str("breaker", name).
				Str("from", fromStr).
				Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerSource{src: src, cb: cb, name: cfg.Name}
}

// FetchRestaurants fetches through the breaker. While the circuit is open it
// fails immediately with gobreaker.ErrOpenState without touching the store.
func (b *BreakerSource) FetchRestaurants(ctx context.Context) ([]catalog.Record, error) {
	records, err := b.cb.Execute(func() ([]catalog.Record, error) {
		return b.src.FetchRestaurants(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Str("breaker", b.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return records, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// Name returns the breaker name used in metrics.
func (b *BreakerSource) Name() string {
	return b.name
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
