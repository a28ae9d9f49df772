// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pickrec/internal/catalog"
	"github.com/tomtom215/pickrec/internal/recommend"
)

// scenarioRecords is the korean/korean/italian fixture.
func scenarioRecords() []catalog.Record {
	return []catalog.Record{
		{ID: catalog.NumberID("101"), Name: "Seoul Garden", Category: "korean", PriceLevel: "low"},
		{ID: catalog.NumberID("102"), Name: "Bibim House", Category: "korean", PriceLevel: "low"},
		{ID: catalog.StringID("r-103"), Name: "Trattoria Roma", Category: "italian", PriceLevel: "high"},
	}
}

// publishedHolder builds an index over records and publishes it.
func publishedHolder(t *testing.T, records []catalog.Record) *recommend.Holder {
	t.Helper()

	ix, err := recommend.Build(context.Background(), catalog.New(records))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h := recommend.NewHolder()
	h.Publish(ix)
	return h
}

// newTestHandler wires a Handler over a published scenario index.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	h := publishedHolder(t, scenarioRecords())
	return NewHandler(recommend.NewService(h, recommend.DefaultConfig()), h)
}

// newTestRouter returns the full chi router with rate limiting disabled.
func newTestRouter(t *testing.T, handler *Handler) http.Handler {
	t.Helper()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(handler, NewChiMiddleware(cfg)).SetupChi()
}

func postRecommend(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

// stubRecommender returns fixed results.
type stubRecommender struct {
	resp  *recommend.Response
	err   error
	panic bool
}

func (s *stubRecommender) Handle(_ context.Context, _ []byte) (*recommend.Response, error) {
	if s.panic {
		panic("index corrupted")
	}
	return s.resp, s.err
}
