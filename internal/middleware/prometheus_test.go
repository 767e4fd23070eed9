// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/covidtracker/internal/metrics"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Run("records metrics for successful request", func(t *testing.T) {
		counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/dashboard", "200")
		before := testutil.ToFloat64(counter)

		handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
		if after := testutil.ToFloat64(counter); after != before+1 {
			t.Errorf("api_requests_total = %v, want %v", after, before+1)
		}
	})

	t.Run("records error status and normalizes country path", func(t *testing.T) {
		counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/countries/{code}", "404")
		before := testutil.ToFloat64(counter)

		handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.WriteHeader(http.StatusInternalServerError) // superfluous, ignored for the label
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/countries/zz", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if after := testutil.ToFloat64(counter); after != before+1 {
			t.Errorf("api_requests_total{404} = %v, want %v", after, before+1)
		}
	})

	t.Run("implicit 200 when handler only writes body", func(t *testing.T) {
		counter := metrics.APIRequestsTotal.WithLabelValues("POST", "/api/v1/selection/country", "200")
		before := testutil.ToFloat64(counter)

		handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{}"))
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/selection/country", nil)
		handler(httptest.NewRecorder(), req)

		if after := testutil.ToFloat64(counter); after != before+1 {
			t.Errorf("api_requests_total = %v, want %v", after, before+1)
		}
	})
}

func TestMetricsResponseWriterHijackUnsupported(t *testing.T) {
	t.Parallel()

	rw := &metricsResponseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
	if _, _, err := rw.Hijack(); err == nil {
		t.Error("expected error when underlying writer cannot hijack")
	}
	if rw.Unwrap() == nil {
		t.Error("Unwrap() returned nil")
	}
}
