// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package cache provides a small generic TTL cache.

It backs the single-country lookups in package sync so repeated detail
requests for the same country within the TTL do not hit the upstream API.

	c := cache.New[*models.CountryStat](time.Minute)
	c.Set("BR", stat)
	stat, ok := c.Get("BR")

Stats:

GetStats reports hits, misses, evictions and the current key count. HitRate
derives the hit percentage. Evictions count both expired entries and explicit
Delete or Clear calls.

Thread Safety:

All methods are safe for concurrent use. Entries are guarded by an RWMutex and
statistics by a separate mutex, so reads never block on stats updates.
*/
package cache
