// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_query_duration_seconds",
			Help:    "Duration of MongoDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_query_errors_total",
			Help: "Total number of MongoDB query errors",
		},
		[]string{"operation", "collection", "error_type"},
	)

	StoreDocumentsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_documents_decoded_total",
			Help: "Total number of MongoDB documents decoded into restaurant records",
		},
		[]string{"result"}, // "ok", "error"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of restaurant records in the most recently loaded catalog",
		},
	)

	CatalogLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
	)

	// Similarity Index Metrics
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "index_build_duration_seconds",
			Help:    "Time to vectorize the catalog and compute the similarity matrix",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_size",
			Help: "Number of distinct feature terms in the published index",
		},
	)

	IndexPublishedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_published_timestamp_seconds",
			Help: "Unix timestamp of the last published index snapshot",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"result"}, // "ok", "missing_payload", "missing_field", "unknown_category", "no_data", "error"
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of items returned per successful lookup",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)

	// Reload Metrics
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordStoreQuery records a MongoDB query metric
func RecordStoreQuery(operation, collection string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())

	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		StoreQueryErrors.WithLabelValues(operation, collection, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIndexPublished records a freshly built index snapshot.
func RecordIndexPublished(records, vocabulary int, buildDuration time.Duration) {
	IndexBuildDuration.Observe(buildDuration.Seconds())
	IndexVocabularySize.Set(float64(vocabulary))
	CatalogRecords.Set(float64(records))
	IndexPublishedTimestamp.SetToCurrentTime()
}

// RecordRecommendation records the outcome of a lookup. items is ignored
// unless result is "ok".
func RecordRecommendation(result string, items int) {
	RecommendationsTotal.WithLabelValues(result).Inc()
	if result == "ok" {
		RecommendationItems.Observe(float64(items))
	}
}

// RecordReload records a background catalog reload attempt.
func RecordReload(err error) {
	if err != nil {
		ReloadsTotal.WithLabelValues("failure").Inc()
		return
	}
	ReloadsTotal.WithLabelValues("success").Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// StatusLabel converts an HTTP status code into a metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
