// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package config

import (
	"fmt"
	"time"
)

// Validate checks that configuration values are present and within bounds.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}

	if err := c.validateDashboard(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// Upstream source bounds
const (
	minSourceTimeout   = time.Second
	maxSourceTimeout   = 5 * time.Minute
	maxHistoricalDays  = 3650
	minRefreshInterval = 10 * time.Second
)

// validateSource validates the upstream API settings
func (c *Config) validateSource() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("COVID_API_URL is required")
	}
	if err := validateHTTPURL(c.Source.BaseURL, "COVID_API_URL"); err != nil {
		return fmt.Errorf("COVID_API_URL is invalid: %w", err)
	}
	if c.Source.Timeout < minSourceTimeout || c.Source.Timeout > maxSourceTimeout {
		return fmt.Errorf("COVID_API_TIMEOUT must be between %v and %v", minSourceTimeout, maxSourceTimeout)
	}
	if c.Source.RateLimit <= 0 {
		return fmt.Errorf("COVID_API_RATE_LIMIT must be greater than 0")
	}
	if c.Source.RateBurst < 1 {
		return fmt.Errorf("COVID_API_BURST must be at least 1")
	}
	if c.Source.HistoricalDays < 1 || c.Source.HistoricalDays > maxHistoricalDays {
		return fmt.Errorf("HISTORICAL_DAYS must be between 1 and %d", maxHistoricalDays)
	}
	if c.Source.RefreshInterval != 0 && c.Source.RefreshInterval < minRefreshInterval {
		return fmt.Errorf("REFRESH_INTERVAL must be 0 (disabled) or at least %v", minRefreshInterval)
	}
	if c.Source.CountryCacheTTL < 0 {
		return fmt.Errorf("COUNTRY_CACHE_TTL must not be negative")
	}
	return nil
}

// validCasesTypes defines the allowed default cases types
var validCasesTypes = map[string]bool{
	"cases":     true,
	"recovered": true,
	"deaths":    true,
}

// validateDashboard validates view defaults
func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if !validCasesTypes[d.DefaultCasesType] {
		return fmt.Errorf("DEFAULT_CASES_TYPE must be one of: cases, recovered, deaths")
	}
	if d.DefaultLat < -90 || d.DefaultLat > 90 {
		return fmt.Errorf("MAP_DEFAULT_LAT must be between -90 and 90")
	}
	if d.DefaultLng < -180 || d.DefaultLng > 180 {
		return fmt.Errorf("MAP_DEFAULT_LNG must be between -180 and 180")
	}
	if d.DefaultZoom < 0 || d.DefaultZoom > 18 {
		return fmt.Errorf("MAP_DEFAULT_ZOOM must be between 0 and 18")
	}
	if d.SelectedZoom < 0 || d.SelectedZoom > 18 {
		return fmt.Errorf("MAP_SELECTED_ZOOM must be between 0 and 18")
	}
	return nil
}

// validateEvents validates the event bus settings
func (c *Config) validateEvents() error {
	if c.Events.BufferSize < 1 || c.Events.BufferSize > 65536 {
		return fmt.Errorf("EVENT_BUFFER_SIZE must be between 1 and 65536")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateSecurity validates inbound rate limiting
func (c *Config) validateSecurity() error {
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
