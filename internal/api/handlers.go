// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/dashboard"
	"github.com/tomtom215/covidtracker/internal/models"
	ws "github.com/tomtom215/covidtracker/internal/websocket"
)

// upstreamName is reported in 502 responses.
const upstreamName = "disease.sh"

// DashboardService is what the handlers need from sync.Manager.
type DashboardService interface {
	Snapshot() dashboard.State
	SelectCountry(ctx context.Context, code string) (dashboard.State, error)
	SetCasesType(casesType models.CasesType) (dashboard.State, error)
	GetCountry(ctx context.Context, code string) (*models.CountryStat, error)
	Ping(ctx context.Context) error
	LastSyncTime() time.Time
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_dashboard.go: dashboard, selection and WebSocket endpoints
//   - handlers_health.go: health and probe endpoints
//   - handlers_helpers.go: request decoding and error mapping
type Handler struct {
	service   DashboardService
	wsHub     *ws.Hub
	upgrader  websocket.Upgrader
	startTime time.Time
}

// NewHandler creates the API handler.
//
// wsHub may be nil, in which case /ws answers 503.
//
// Example:
//
//	handler := api.NewHandler(manager, cfg, hub)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(service DashboardService, cfg *config.Config, wsHub *ws.Hub) *Handler {
	var origins []string
	if cfg != nil {
		origins = cfg.Security.CORSOrigins
	}
	return &Handler{
		service:   service,
		wsHub:     wsHub,
		upgrader:  ws.Upgrader(origins),
		startTime: time.Now(),
	}
}
