// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package api provides the HTTP and WebSocket presentation layer for the
dashboard.

Every endpoint reads from, or dispatches to, the dashboard state held by
sync.Manager. Nothing here talks to the upstream directly except through the
DashboardService interface.

Routes (chi):

	GET  /api/v1/dashboard              full rendered view
	GET  /api/v1/summary                info boxes for the selection
	GET  /api/v1/countries?sort=        table sorted by a count field
	GET  /api/v1/countries/{code}       one country, fetched on demand
	GET  /api/v1/options                dropdown options, worldwide first
	GET  /api/v1/map?cases_type=        viewport and circles
	GET  /api/v1/historical?cases_type= daily-new chart
	POST /api/v1/selection/country      {"country":"us"}
	POST /api/v1/selection/cases-type   {"cases_type":"deaths"}
	GET  /api/v1/ws                     dashboard_update stream
	GET  /api/v1/health[/live|/ready]   probes
	GET  /metrics                       Prometheus
	GET  /swagger/*                     OpenAPI UI

Responses use the APIResponse envelope:

	{"success":true,"data":{...},"meta":{"request_id":"...","timestamp":"...","state_version":7}}

Error mapping:

  - 400 VALIDATION_FAILED / BAD_REQUEST: invalid query, path or body
  - 404 NOT_FOUND: unknown country
  - 502 EXTERNAL_SERVICE_FAILED: upstream error
  - 503 SERVICE_UNAVAILABLE: circuit breaker open, or data not loaded yet

Middleware order: request ID, real IP, recoverer, CORS, then per group rate
limiting (go-chi/httprate), security headers, Prometheus metrics and gzip.
*/
package api
