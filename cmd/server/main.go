// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/covidtracker/internal/api"
	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/dashboard"
	_ "github.com/tomtom215/covidtracker/internal/docs" // Import generated swagger docs
	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/supervisor"
	"github.com/tomtom215/covidtracker/internal/supervisor/services"
	"github.com/tomtom215/covidtracker/internal/sync"
	ws "github.com/tomtom215/covidtracker/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Covid Tracker with supervisor tree")
	logging.Info().
		Str("source_url", cfg.Source.BaseURL).
		Int("historical_days", cfg.Source.HistoricalDays).
		Dur("refresh_interval", cfg.Source.RefreshInterval).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows every origin (CORS_ORIGINS=*) in production; set explicit origins")
	}

	watchConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// In-process bus for state changes: store publishes, event bridge fans out
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(cfg.Events.BufferSize),
	}, watermill.NewSlogLogger(logging.NewSlogLogger()))
	defer func() {
		if err := pubSub.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	store := dashboard.NewStore(dashboard.InitialState(dashboard.DefaultsFromConfig(&cfg.Dashboard)), pubSub)

	var source sync.DataSource = sync.NewCircuitBreakerClient(sync.NewClient(&cfg.Source), sync.DefaultCircuitBreakerConfig())
	if cfg.Source.CountryCacheTTL > 0 {
		source = sync.NewCachedSource(source, cfg.Source.CountryCacheTTL)
	}
	syncManager := sync.NewManager(source, store, &cfg.Source)

	wsHub := ws.NewHub()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(syncManager, cfg, wsHub)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Messaging layer services
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddMessagingService(services.NewEventBridgeService(pubSub, wsHub, store))
	tree.AddMessagingService(services.NewSyncService(syncManager))
	logging.Info().Msg("WebSocket hub, event bridge and sync manager added to supervisor tree")

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// watchConfig reapplies the log level when the config file changes. Other
// settings need a restart.
func watchConfig() {
	path := config.FindConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		reloaded, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Config reload failed")
			return
		}
		logging.SetLevelString(reloaded.Logging.Level)
		logging.Info().Str("level", reloaded.Logging.Level).Msg("Log level reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch disabled")
	}
}
