// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/covidtracker/internal/cache"
	"github.com/tomtom215/covidtracker/internal/metrics"
	"github.com/tomtom215/covidtracker/internal/models"
)

const countryCacheName = "country"

// CachedSource caches single-country lookups of the wrapped DataSource for a
// fixed TTL. Keys are the trimmed, upper-cased lookup string, so "us" and
// "US" share an entry while "USA" gets its own.
//
// A successful GetCountries means the upstream has a newer snapshot, so the
// country cache is cleared. Errors are never cached.
type CachedSource struct {
	source    DataSource
	countries *cache.Cache[models.CountryStat]
}

// NewCachedSource wraps source. ttl must be positive.
func NewCachedSource(source DataSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:    source,
		countries: cache.New[models.CountryStat](ttl),
	}
}

// GetGlobal is not cached.
func (c *CachedSource) GetGlobal(ctx context.Context) (*models.GlobalStat, error) {
	return c.source.GetGlobal(ctx)
}

// GetCountries fetches the full list and clears cached single lookups.
func (c *CachedSource) GetCountries(ctx context.Context) ([]models.CountryStat, error) {
	out, err := c.source.GetCountries(ctx)
	if err != nil {
		return nil, err
	}
	c.countries.Clear()
	return out, nil
}

// GetCountry serves code from the cache or fetches and stores it.
func (c *CachedSource) GetCountry(ctx context.Context, code string) (*models.CountryStat, error) {
	key := strings.ToUpper(strings.TrimSpace(code))

	if stat, ok := c.countries.Get(key); ok {
		metrics.RecordCacheLookup(countryCacheName, true)
		return &stat, nil
	}
	metrics.RecordCacheLookup(countryCacheName, false)

	stat, err := c.source.GetCountry(ctx, code)
	if err != nil {
		return nil, err
	}
	c.countries.Set(key, *stat)
	return stat, nil
}

// GetHistoricalAll is not cached.
func (c *CachedSource) GetHistoricalAll(ctx context.Context, days int) (*models.HistoricalTimeline, error) {
	return c.source.GetHistoricalAll(ctx, days)
}

// Ping always reaches the upstream.
func (c *CachedSource) Ping(ctx context.Context) error {
	return c.source.Ping(ctx)
}

// CacheStats reports country cache statistics.
func (c *CachedSource) CacheStats() cache.Stats {
	return c.countries.GetStats()
}
