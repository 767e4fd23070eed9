// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package main is the entry point for the Covid Tracker server.

The server keeps one dashboard state built from the disease.sh API: worldwide
totals, every country's totals and the worldwide daily timeline. It serves that
state as JSON and pushes every change over WebSocket.

# Application Architecture

	RootSupervisor ("covidtracker")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   ├── EventBridgeService   (dashboard.state -> WebSocket)
	│   └── SyncService          (startup fetches, periodic refresh)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService    (chi router)

State changes flow one way:

	sync.Manager -> dashboard.Store.Dispatch -> watermill gochannel
	             -> EventBridgeService -> websocket.Hub -> clients

# Startup Sequence

 1. Configuration: .env, config.yaml, environment (Koanf v2)
 2. Logging: zerolog, level and format from config
 3. Event bus: watermill gochannel
 4. Store and sync manager: HTTP client behind a circuit breaker
 5. WebSocket hub and HTTP router
 6. Supervisor tree: blocks until SIGINT or SIGTERM

The three startup fetches run when SyncService starts. The HTTP server comes
up at the same time; /api/v1/health/ready answers 503 until all three slices
have loaded.

# Configuration

Commonly used environment variables:

	COVID_API_URL=https://disease.sh
	HISTORICAL_DAYS=120
	REFRESH_INTERVAL=10m
	HTTP_PORT=3858
	LOG_LEVEL=info
	LOG_FORMAT=json
	CORS_ORIGINS=https://dashboard.example.com

See package config for the full list. When a config file is in use its
log level is reloaded on change.

# Example Usage

	./covidtracker
	curl localhost:3858/api/v1/summary
	curl -X POST localhost:3858/api/v1/selection/country -d '{"country":"br"}'
*/
package main
