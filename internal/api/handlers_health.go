// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/covidtracker/internal/dashboard"
)

// pingTimeout bounds the upstream check done by /health.
const pingTimeout = 5 * time.Second

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status            string            `json:"status"`
	Ready             bool              `json:"ready"`
	UpstreamConnected bool              `json:"upstream_connected"`
	Loaded            dashboard.Loaded  `json:"loaded"`
	Errors            map[string]string `json:"errors,omitempty"`
	StateVersion      uint64            `json:"state_version"`
	WebSocketClients  int               `json:"websocket_clients"`
	LastSyncTime      *time.Time        `json:"last_sync_time,omitempty"`
	Uptime            float64           `json:"uptime"`
}

// Health reports overall status including an upstream ping.
//
// @Summary Get service health
// @Description Returns readiness, upstream connectivity, per-slice load flags and the last successful sync
// @Tags Core
// @Produce json
// @Success 200 {object} api.APIResponse{data=api.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	upstream := h.service.Ping(ctx) == nil
	st := h.service.Snapshot()

	status := "healthy"
	if !upstream || !st.Ready() {
		status = "degraded"
	}

	var lastSyncPtr *time.Time
	if lastSync := h.service.LastSyncTime(); !lastSync.IsZero() {
		lastSyncPtr = &lastSync
	}

	var errs map[string]string
	if len(st.Errors) > 0 {
		errs = make(map[string]string, len(st.Errors))
		for slice, msg := range st.Errors {
			errs[string(slice)] = msg
		}
	}

	clients := 0
	if h.wsHub != nil {
		clients = h.wsHub.GetClientCount()
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:            status,
		Ready:             st.Ready(),
		UpstreamConnected: upstream,
		Loaded:            st.Loaded,
		Errors:            errs,
		StateVersion:      st.Version,
		WebSocketClients:  clients,
		LastSyncTime:      lastSyncPtr,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probes. It never checks dependencies.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is alive
// @Tags Core
// @Produce json
// @Success 200 {object} api.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes. The service is ready once the
// global totals and the country list have loaded.
//
// @Summary Readiness probe
// @Description Returns 200 once global totals and the country list are loaded, 503 before that
// @Tags Core
// @Produce json
// @Success 200 {object} api.APIResponse "Service is ready"
// @Failure 503 {object} api.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	st := h.service.Snapshot()
	ready := st.Ready()

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).WithStatus(statusCode, map[string]any{
		"ready_to_serve": ready,
		"loaded":         st.Loaded,
		"uptime":         time.Since(h.startTime).Seconds(),
	})
}
