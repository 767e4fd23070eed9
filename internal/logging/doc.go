// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

// Package logging provides centralized zerolog-based structured logging.
//
// JSON output is the default for production; console output is available for
// local development. A global logger is configured once at startup and can be
// reconfigured at runtime (the config watcher uses SetLevelString).
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("country", "US").Msg("Country selected")
//	logging.Error().Err(err).Str("endpoint", "/v3/covid-19/all").Msg("Fetch failed")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Context
//
// Ctx attaches correlation_id and request_id from a context.Context so that
// a background refresh or an HTTP request can be traced across components.
//
// # slog
//
// NewSlogLogger returns an *slog.Logger that writes through zerolog. It is
// handed to the suture supervisor tree and to the watermill event bus.
package logging
