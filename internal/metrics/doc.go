// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, endpoint pattern and status (counter)
  - api_request_duration_seconds: request latency (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: requests rejected by httprate (counter)

Storage Metrics:
  - storage_query_duration_seconds: per backend and operation (histogram)
  - storage_query_errors_total: failures labelled with the error kind (counter)

Domain Metrics:
  - entity_operations_total: film/user create, update, delete (counter)
  - ledger_mutations_total: like and friendship add/remove (counter)
  - rejected_writes_total: writes refused as validation, not_found or
    invalid_operation (counter)
  - popular_ranking_duration_seconds: ranking pass latency (histogram)
  - popular_ranking_candidates: films considered by the last ranking (gauge)

Application Metrics:
  - app_info: version, Go version and storage backend (gauge, always 1)
  - app_uptime_seconds (gauge)

# Usage

	start := time.Now()
	err := store.AddLike(ctx, filmID, userID)
	metrics.RecordDBQuery("duckdb", "add_like", time.Since(start), err)

Error labels use ErrorKind, which never includes message text, so label
cardinality stays bounded.
*/
package metrics
