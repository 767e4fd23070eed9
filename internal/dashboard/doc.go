// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package dashboard holds the dashboard state and the pure reducer that
evolves it.

State is an immutable value. Fetch results and user actions are expressed as
Events (GlobalLoaded, CountriesLoaded, HistoricalLoaded, CountrySelected,
CasesTypeChanged, FetchFailed) and folded in with Reduce:

	next := dashboard.Reduce(prev, dashboard.CountrySelected{Code: "DE", Stat: de, At: now})

Store serializes Dispatch calls, keeps the latest State and publishes the
rendered View on StateTopic through a Watermill publisher. Each message
carries the state version in its metadata; consumers drop anything older than
the last version they delivered.

Render derives everything the presentation layer draws: info boxes, the
sorted country table, dropdown options, map circles and viewport, and the
worldwide daily-new chart.
*/
package dashboard
