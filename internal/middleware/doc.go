// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

// Package middleware provides HTTP middleware that is independent of the router.
//
// PrometheusMetrics wraps an http.HandlerFunc and records api_requests_total,
// api_request_duration_seconds and api_active_requests. The chi router adapts
// it with chiMiddleware and applies it to every /api/v1 route.
package middleware
