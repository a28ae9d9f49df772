// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/pickrec/internal/config"
	"github.com/tomtom215/pickrec/internal/metrics"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m == nil {
		t.Fatal("NewChiMiddleware returned nil")
	}
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestNewChiMiddlewareConfig_FromSecurityConfig(t *testing.T) {
	sec := &config.SecurityConfig{
		CORSOrigins:       []string{"https://example.com", "https://other.com"},
		RateLimitReqs:     200,
		RateLimitWindow:   2 * time.Minute,
		RateLimitDisabled: true,
	}

	cfg := NewChiMiddlewareConfig(sec)

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins length = %d, want 2", len(cfg.CORSAllowedOrigins))
	}
	if cfg.RateLimitRequests != 200 {
		t.Errorf("RateLimitRequests = %d, want 200", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != 2*time.Minute {
		t.Errorf("RateLimitWindow = %v, want 2m", cfg.RateLimitWindow)
	}
	if !cfg.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
}

func TestNewChiMiddlewareConfig_EmptyOriginsKeepDefault(t *testing.T) {
	cfg := NewChiMiddlewareConfig(&config.SecurityConfig{RateLimitReqs: 10, RateLimitWindow: time.Second})

	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
}

// =====================================================
// CORS Middleware Tests
// =====================================================

func TestChiMiddleware_CORS_Preflight(t *testing.T) {
	m := NewChiMiddleware(DefaultChiMiddlewareConfig())

	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "https://any-origin.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "POST" {
		t.Errorf("Access-Control-Allow-Methods = %q, want POST", got)
	}
}

func TestChiMiddleware_CORS_SpecificOrigin(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://allowed.com"}
	m := NewChiMiddleware(cfg)

	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		origin string
		want   string
	}{
		{"https://allowed.com", "https://allowed.com"},
		{"https://evil.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

// =====================================================
// Rate Limit Middleware Tests
// =====================================================

func TestChiMiddleware_RateLimit_Disabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	m := NewChiMiddleware(cfg)

	handler := m.RateLimit("/test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestChiMiddleware_RateLimit_Exceeded(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	m := NewChiMiddleware(cfg)

	handler := m.RateLimit("/rate-test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/rate-test"))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/rate-test", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			if got := decodeError(t, rec); got != msgRateLimited {
				t.Errorf("error = %q, want %q", got, msgRateLimited)
			}
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
	if got := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/rate-test")) - before; got != 1 {
		t.Errorf("rate limit hits grew by %v, want 1", got)
	}
}

func TestChiMiddleware_RateLimit_PerClient(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	m := NewChiMiddleware(cfg)

	handler := m.RateLimit("/per-client")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"192.0.2.1:1000", "192.0.2.2:1000"} {
		req := httptest.NewRequest(http.MethodPost, "/per-client", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", addr, rec.Code)
		}
	}
}
