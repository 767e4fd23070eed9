// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package config provides centralized configuration management.

# Configuration Sources

Configuration is layered with Koanf v2 (later layers win):

  - Built-in defaults (defaultConfig)
  - YAML file: CONFIG_PATH, ./config.yaml, or /etc/covidtracker/config.yaml
  - Environment variables, optionally seeded from a .env file (DOTENV_PATH)

# Environment Variables

Upstream source (SourceConfig):
  - COVID_API_URL: API root (default: https://disease.sh)
  - COVID_API_TIMEOUT: Per-request timeout (default: 30s)
  - COVID_API_RATE_LIMIT: Outbound requests per second (default: 5)
  - COVID_API_BURST: Outbound burst size (default: 5)
  - HISTORICAL_DAYS: Chart window in days (default: 120)
  - REFRESH_INTERVAL: Periodic refresh, 0 disables (default: 10m)
  - COUNTRY_CACHE_TTL: Lifetime of cached single-country lookups, 0 disables (default: 1m)

Dashboard (DashboardConfig):
  - DEFAULT_CASES_TYPE: cases, recovered or deaths (default: cases)
  - MAP_DEFAULT_LAT, MAP_DEFAULT_LNG: Initial map center (default: 34.80746, -40.4796)
  - MAP_DEFAULT_ZOOM: Initial zoom (default: 3)
  - MAP_SELECTED_ZOOM: Zoom after selecting a country (default: 4)

Events (EventsConfig):
  - EVENT_BUFFER_SIZE: State-change subscriber buffer (default: 64)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3858)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Security (SecurityConfig):
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Inbound rate limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Disable inbound rate limiting
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Hot Reload

WatchConfigFile watches the YAML file; cmd/server uses it to apply a new
log level without a restart.
*/
package config
