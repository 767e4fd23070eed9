// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package metrics provides Prometheus instrumentation.

All collectors are registered on the default registry through promauto and
exposed by the HTTP server at /metrics.

Metric Families:

  - api_*: inbound request count, latency and in-flight gauge (PrometheusMetrics middleware)
  - upstream_*: calls to the statistics API by endpoint and status
  - circuit_breaker_*: state, results and transitions of the upstream breaker
  - websocket_*: connected clients, sent and dropped messages
  - dashboard_*: applied state events, state version, country count

Label values for paths go through NormalizeEndpoint so per-country URLs
collapse into one series.

Example queries:

	rate(upstream_requests_total{status!="ok"}[5m])
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))
	circuit_breaker_state{name="disease-sh"}
*/
package metrics
