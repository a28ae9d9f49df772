// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Store Metrics:
  - mongo_query_duration_seconds: Query execution time (histogram)
    Labels: operation, collection
  - mongo_query_errors_total: Query failures (counter)
    Labels: operation, collection, error_type
  - mongo_documents_decoded_total: Decoded documents (counter)
    Labels: result

Catalog and Index Metrics:
  - catalog_records: Records in the current catalog (gauge)
  - catalog_load_errors_total: Failed loads (counter)
  - catalog_reloads_total: Background reload attempts (counter)
    Labels: result
  - index_build_duration_seconds: TF-IDF and cosine matrix build time (histogram)
  - index_vocabulary_size: Distinct terms in the index (gauge)
  - index_published_timestamp_seconds: Last publish time (gauge)

Recommendation Metrics:
  - recommendations_total: Lookups by outcome (counter)
    Labels: result (ok, missing_payload, missing_field, unknown_category, no_data, error)
  - recommendation_items: Items per successful lookup (histogram)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: State changes (counter)

# Usage

	start := time.Now()
	cursor, err := coll.Find(ctx, filter, opts)
	metrics.RecordStoreQuery("find", "like", time.Since(start), err)

	metrics.RecordRecommendation("ok", len(items))

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
