// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package supervisor runs the long-lived services of the server under suture v4.

The tree has two layers so a crash in one does not restart the other:

	RootSupervisor ("covidtracker")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   ├── SyncService
	│   └── EventBridgeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Failed services restart with suture's backoff. FailureThreshold,
FailureDecay and FailureBackoff come from TreeConfig. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewSyncService(manager))
	tree.AddMessagingService(services.NewEventBridgeService(pubSub, hub, store))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	errCh := tree.ServeBackground(ctx)

When ctx is canceled the tree stops its children, waiting up to
ShutdownTimeout. UnstoppedServiceReport lists anything that did not return in
time.

Services live in the services subpackage. Each implements suture.Service:
Serve blocks until its context is canceled and returns ctx.Err() on a clean
stop, or an error that makes the supervisor restart it.
*/
package supervisor
