// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
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
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}, // view reads are in-memory; selection posts wait on upstream
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Upstream (disease.sh) Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to the statistics API",
		},
		[]string{"endpoint", "status"}, // status: "ok", "error", HTTP code
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of statistics API requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	UpstreamLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "upstream_last_success_timestamp_seconds",
			Help: "Unix time of the last successful fetch per endpoint",
		},
		[]string{"endpoint"},
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
		[]string{"name", "from", "to"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_dropped_total",
			Help: "Total number of WebSocket messages dropped because a buffer was full",
		},
	)

	// Dashboard State Metrics
	DashboardEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_events_total",
			Help: "Total number of events applied to the dashboard state",
		},
		[]string{"event"},
	)

	DashboardStateVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_state_version",
			Help: "Current dashboard state version (increments on every applied event)",
		},
	)

	DashboardCountries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_countries",
			Help: "Number of countries in the current dashboard state",
		},
	)

	DashboardPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_publish_errors_total",
			Help: "Total number of state-change messages that failed to publish",
		},
	)

	// Cache Metrics
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Total number of cache lookups by result (hit, miss)",
		},
		[]string{"cache", "result"},
	)
)

// RecordAPIRequest records an API request with method, endpoint, status code, and duration
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records one call to the statistics API.
// statusCode is 0 when the request failed before a response arrived.
func RecordUpstreamRequest(endpoint string, statusCode int, duration time.Duration, err error) {
	status := "ok"
	switch {
	case statusCode != 0 && statusCode != 200:
		status = strconv.Itoa(statusCode)
	case err != nil:
		status = "error"
	}

	UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	if status == "ok" {
		UpstreamLastSuccess.WithLabelValues(endpoint).SetToCurrentTime()
	}
}

// RecordDashboardEvent records an applied state event and the resulting version.
func RecordDashboardEvent(event string, version uint64, countries int) {
	DashboardEventsTotal.WithLabelValues(event).Inc()
	DashboardStateVersion.Set(float64(version))
	DashboardCountries.Set(float64(countries))
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(name string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(name, result).Inc()
}

// NormalizeEndpoint collapses path parameters so label cardinality stays bounded.
//
//	/v3/covid-19/countries/us   -> /v3/covid-19/countries/{code}
//	/api/v1/countries/DE        -> /api/v1/countries/{code}
func NormalizeEndpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for _, prefix := range []string{"/v3/covid-19/countries/", "/api/v1/countries/"} {
		if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
			return prefix + "{code}"
		}
	}
	return path
}
