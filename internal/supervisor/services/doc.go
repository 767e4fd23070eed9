// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package services provides suture.Service wrappers for the long-running
components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error and names itself through fmt.Stringer:

  - HTTPServerService: ListenAndServe plus graceful Shutdown
  - WebSocketHubService: websocket.Hub.RunWithContext
  - SyncService: sync.Manager Start/Stop
  - EventBridgeService: watermill subscription on dashboard.StateTopic
    forwarded to the hub, dropping out-of-order versions

Returning ctx.Err() on cancellation marks a clean stop; any other error
makes the supervisor restart the service with backoff.
*/
package services
