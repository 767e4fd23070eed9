// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers using Koanf v2:
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml or CONFIG_PATH)
//  3. Environment variables (highest priority, optionally seeded from .env)
type Config struct {
	Source    SourceConfig    `koanf:"source"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Events    EventsConfig    `koanf:"events"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// SourceConfig holds settings for the upstream statistics API (disease.sh).
type SourceConfig struct {
	// BaseURL is the API root without path, e.g. https://disease.sh
	BaseURL string `koanf:"base_url"`

	// Timeout bounds every outbound request.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained outbound request rate (requests per second).
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the token bucket size for outbound requests.
	RateBurst int `koanf:"rate_burst"`

	// HistoricalDays is the window requested from /historical/all (lastdays).
	HistoricalDays int `koanf:"historical_days"`

	// RefreshInterval re-runs the startup fetches periodically. 0 disables.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// CountryCacheTTL keeps single-country lookups for this long. 0 disables.
	CountryCacheTTL time.Duration `koanf:"country_cache_ttl"`
}

// DashboardConfig holds view defaults.
type DashboardConfig struct {
	DefaultCasesType string  `koanf:"default_cases_type"`
	DefaultLat       float64 `koanf:"default_lat"`
	DefaultLng       float64 `koanf:"default_lng"`
	DefaultZoom      int     `koanf:"default_zoom"`
	SelectedZoom     int     `koanf:"selected_zoom"`
}

// EventsConfig holds settings for the in-process state-change bus.
type EventsConfig struct {
	// BufferSize is the per-subscriber output channel buffer.
	BufferSize int `koanf:"buffer_size"`
}

// ServerConfig holds HTTP server settings for the presentation adapter.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// SecurityConfig holds inbound rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file:line in log output.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources.
// A .env file is applied to the process environment first (existing
// variables win), then the Koanf layers are loaded.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// ShouldWarnAboutCORS returns true if CORS allows every origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
