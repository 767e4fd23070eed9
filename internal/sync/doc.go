// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package sync fetches epidemiological statistics from a disease.sh compatible
API and feeds the results into the dashboard state.

Components:

  - Client: rate-limited HTTP client for /v3/covid-19/all, /countries,
    /countries/{code} and /historical/all
  - CircuitBreakerClient: sony/gobreaker decorator around any DataSource
  - CachedSource: TTL cache for single-country lookups
  - Manager: startup fetches, country selection and periodic refresh

Error Handling:

Non-200 responses come back as *StatusError carrying the status and at most
64KB of the body. A 404 on a country lookup becomes ErrCountryNotFound. When
the breaker is open calls fail immediately with ErrCircuitOpen. Nothing is
retried; the next refresh tick is the retry.

Usage:

	var client sync.DataSource = sync.NewCircuitBreakerClient(sync.NewClient(&cfg.Source), sync.DefaultCircuitBreakerConfig())
	client = sync.NewCachedSource(client, cfg.Source.CountryCacheTTL)
	manager := sync.NewManager(client, store, &cfg.Source)
	if err := manager.Start(ctx); err != nil {
	    return err
	}
	defer manager.Stop()
*/
package sync
