// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

// Package main provides the Covid Tracker HTTP server
//
// Covid Tracker API serves the state of a COVID-19 statistics dashboard built
// from the public disease.sh API.
//
// @title Covid Tracker API
// @version 1.0
// @description Worldwide and per-country COVID-19 totals, a sortable country table,
// @description map circles sized by the selected counter and a daily-new chart.
// @description
// @description ## Real-time Updates
// @description
// @description `/api/v1/ws` pushes a `dashboard_update` message with the full view
// @description every time the dashboard state changes.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Country not found",
// @description     "details": {}
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-10-17T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/covidtracker/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3858
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and probes
//
// @tag.name Dashboard
// @tag.description Rendered dashboard state: info boxes, table, map, chart and dropdown options
//
// @tag.name Selection
// @tag.description Change the selected country or counter
package main
