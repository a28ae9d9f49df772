// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordStoreQuery tests MongoDB query metric recording
func TestRecordStoreQuery(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		collection string
		err        error
		wantLabel  string
	}{
		{
			name:       "successful find",
			operation:  "find",
			collection: "test_ok",
		},
		{
			name:       "failed find",
			operation:  "find",
			collection: "test_fail",
			err:        errors.New("connection refused"),
			wantLabel:  "connection refused",
		},
		{
			name:       "long error is truncated to 50 chars",
			operation:  "find",
			collection: "test_long",
			err:        errors.New(strings.Repeat("x", 80)),
			wantLabel:  strings.Repeat("x", 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordStoreQuery(tt.operation, tt.collection, 5*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			got := testutil.ToFloat64(StoreQueryErrors.WithLabelValues(tt.operation, tt.collection, tt.wantLabel))
			if got != 1 {
				t.Errorf("StoreQueryErrors{%s} = %v, want 1", tt.wantLabel, got)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend-test", "200"))

	RecordAPIRequest("POST", "/recommend-test", StatusLabel(200), 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend-test", "200"))
	if after-before != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordIndexPublished(t *testing.T) {
	RecordIndexPublished(3, 4, 10*time.Millisecond)

	if got := testutil.ToFloat64(CatalogRecords); got != 3 {
		t.Errorf("CatalogRecords = %v, want 3", got)
	}
	if got := testutil.ToFloat64(IndexVocabularySize); got != 4 {
		t.Errorf("IndexVocabularySize = %v, want 4", got)
	}
	if got := testutil.ToFloat64(IndexPublishedTimestamp); got <= 0 {
		t.Errorf("IndexPublishedTimestamp = %v, want > 0", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	results := []string{"ok", "missing_payload", "missing_field", "unknown_category", "no_data"}

	for _, result := range results {
		t.Run(result, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(result))
			RecordRecommendation(result, 2)
			after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(result))
			if after-before != 1 {
				t.Errorf("RecommendationsTotal{%s} delta = %v, want 1", result, after-before)
			}
		})
	}
}

func TestRecordReload(t *testing.T) {
	okBefore := testutil.ToFloat64(ReloadsTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(ReloadsTotal.WithLabelValues("failure"))

	RecordReload(nil)
	RecordReload(errors.New("store down"))

	if got := testutil.ToFloat64(ReloadsTotal.WithLabelValues("success")) - okBefore; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ReloadsTotal.WithLabelValues("failure")) - failBefore; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "mongo_catalog"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("CircuitBreakerState = %v, want 2", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "success").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "failure").Inc()
	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("test", "go1.25")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}

// TestConcurrentMetricUpdates verifies collectors tolerate concurrent writers
func TestConcurrentMetricUpdates(t *testing.T) {
	const goroutines = 20
	var wg sync.WaitGroup

	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("concurrent"))

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordRecommendation("concurrent", 0)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("concurrent"))
	if after-before != goroutines {
		t.Errorf("delta = %v, want %d", after-before, goroutines)
	}
}

// TestMetricsDescribe verifies every collector exposes a descriptor
func TestMetricsDescribe(t *testing.T) {
	collectors := []prometheus.Collector{
		StoreQueryDuration,
		StoreQueryErrors,
		StoreDocumentsDecoded,
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		CatalogRecords,
		CatalogLoadErrors,
		IndexBuildDuration,
		IndexVocabularySize,
		IndexPublishedTimestamp,
		RecommendationsTotal,
		RecommendationItems,
		ReloadsTotal,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		AppInfo,
		AppUptime,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("collector has no descriptors")
		}
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("POST", "/recommend", "200", 2*time.Millisecond)
	}
}
