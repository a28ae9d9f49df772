// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/logging"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// Response is the body of a successful lookup.
type Response struct {
	GuestID         json.RawMessage  `json:"guestId"`
	Recommendations []catalog.Record `json:"recommendations"`
}

// Service answers recommendation requests from the published index.
type Service struct {
	holder *Holder
	cfg    Config
}

// NewService creates a Service reading snapshots from holder.
func NewService(holder *Holder, cfg Config) *Service {
	return &Service{holder: holder, cfg: cfg.withDefaults()}
}

// Recommend resolves req against the current index. The returned error is
// one of the lookup precondition errors; see IsBadRequest.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	scored, err := s.holder.Load().Recommend(req.Preferences, s.cfg.TopK)
	if err != nil {
		metrics.RecordRecommendation(Outcome(err), 0)
		logging.Ctx(ctx).Debug().
			Err(err).
			Str("category", req.Preferences).
			Msg("recommendation rejected")
		return nil, err
	}

	resp := &Response{
		GuestID:         req.GuestID,
		Recommendations: make([]catalog.Record, len(scored)),
	}
	for i, sc := range scored {
		resp.Recommendations[i] = sc.Record
	}

	metrics.RecordRecommendation("ok", len(scored))
	logging.Ctx(ctx).Debug().
		Str("category", req.Preferences).
		Int("items", len(scored)).
		Msg("recommendation served")

	return resp, nil
}

// Handle decodes body and resolves it in one step. Decode failures are
// recorded under the same outcome metric as lookup failures.
func (s *Service) Handle(ctx context.Context, body []byte) (*Response, error) {
	req, err := DecodeRequest(body)
	if err != nil {
		metrics.RecordRecommendation(Outcome(err), 0)
		logging.Ctx(ctx).Debug().Err(err).Msg("recommendation request rejected")
		return nil, err
	}
	return s.Recommend(ctx, req)
}
