// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: labels method, endpoint, status_code
  - api_request_duration_seconds: labels method, endpoint
  - api_active_requests
  - api_rate_limit_hits_total: label endpoint

Recommendation Metrics:
  - recommendation_requests_total: labels type, outcome
  - recommendation_duration_seconds: label type (cache misses only)
  - recommendation_result_size: label type

Engine Metrics:
  - engine_build_duration_seconds
  - engine_builds_total: label result
  - engine_products_loaded, engine_interactions_loaded, engine_users
  - engine_last_build_timestamp_seconds

Storage Metrics:
  - duckdb_query_duration_seconds, duckdb_query_errors_total
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_consecutive_failures, circuit_breaker_state_transitions_total

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_entries: label cache_type

# Usage

	start := time.Now()
	rows, err := engine.PriceRecommendations(id, 5)
	metrics.RecordRecommendation("price", "ok", len(rows), time.Since(start))
*/
package metrics
