// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package websocket pushes dashboard state changes to browsers.

Key Components:

  - Hub: owns the client set and fans out broadcasts
  - Client: one connection with a read goroutine and a write goroutine
  - Message: {"type": ..., "data": ...} envelope

Architecture:

	dashboard.Store ──publish──▶ EventBridge ──▶ Hub ──▶ Client1
	                                              ├────▶ Client2
	                                              └────▶ Client3

Every state change arrives as a dashboard_update message whose data is the
rendered dashboard view. The hub keeps the most recent one and sends it to
each client as soon as it registers.

Message Types:

  - dashboard_update: full rendered view, server to client
  - ping / pong: application-level keepalive, client initiated

Usage Example:

	hub := websocket.NewHub()
	go hub.RunWithContext(ctx)

	upgrader := websocket.Upgrader(cfg.Security.CORSOrigins)
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
	    websocket.ServeWS(hub, &upgrader, w, r)
	})

Client (JavaScript):

	const ws = new WebSocket('ws://localhost:3858/api/v1/ws');
	ws.onmessage = (event) => {
	    const msg = JSON.parse(event.data);
	    if (msg.type === 'dashboard_update') render(msg.data);
	};

Connection Lifecycle:

 1. ServeWS upgrades the request (Origin must be allowed)
 2. Hub registers the client and sends the latest view
 3. Broadcasts are queued per client; a client whose buffer is full is
    disconnected rather than slowing everyone down
 4. On read error or hub shutdown the client is unregistered and closed

Timeouts:

  - writeWait: 10 seconds per write
  - pongWait: 60 seconds without a pong closes the connection
  - pingPeriod: 54 seconds
*/
package websocket
