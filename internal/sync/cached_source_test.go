// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/covidtracker/internal/models"
)

var _ DataSource = (*CachedSource)(nil)

func TestCachedSourceGetCountryCaches(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	src.On("GetCountry", mock.Anything, "us").
		Return(&models.CountryStat{Country: "USA", Counts: models.Counts{Cases: models.Int64(100)}}, nil).Once()

	c := NewCachedSource(src, time.Minute)

	first, err := c.GetCountry(t.Context(), "us")
	require.NoError(t, err)
	second, err := c.GetCountry(t.Context(), " US ")
	require.NoError(t, err)

	assert.Equal(t, "USA", first.Country)
	assert.Equal(t, first.Country, second.Country)
	assert.Equal(t, int64(1), c.CacheStats().Hits)
	src.AssertExpectations(t)
}

func TestCachedSourceDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	src.On("GetCountry", mock.Anything, "XX").Return(nil, ErrCountryNotFound).Twice()

	c := NewCachedSource(src, time.Minute)
	for range 2 {
		_, err := c.GetCountry(t.Context(), "XX")
		assert.ErrorIs(t, err, ErrCountryNotFound)
	}
	src.AssertExpectations(t)
}

func TestCachedSourceCountriesClearsCache(t *testing.T) {
	t.Parallel()

	_, countries, _ := fixtures()
	src := &mockSource{}
	src.On("GetCountry", mock.Anything, "AA").Return(&models.CountryStat{Country: "A"}, nil).Twice()
	src.On("GetCountries", mock.Anything).Return(countries, nil).Once()

	c := NewCachedSource(src, time.Minute)
	_, err := c.GetCountry(t.Context(), "AA")
	require.NoError(t, err)

	got, err := c.GetCountries(t.Context())
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = c.GetCountry(t.Context(), "AA")
	require.NoError(t, err)
	src.AssertExpectations(t)
}

func TestCachedSourceFailedCountriesKeepsCache(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	src.On("GetCountry", mock.Anything, "AA").Return(&models.CountryStat{Country: "A"}, nil).Once()
	src.On("GetCountries", mock.Anything).Return(nil, errors.New("boom")).Once()

	c := NewCachedSource(src, time.Minute)
	_, err := c.GetCountry(t.Context(), "AA")
	require.NoError(t, err)

	_, err = c.GetCountries(t.Context())
	require.Error(t, err)

	_, err = c.GetCountry(t.Context(), "AA")
	require.NoError(t, err)
	src.AssertExpectations(t)
}

func TestCachedSourcePassThrough(t *testing.T) {
	t.Parallel()

	g, _, tl := fixtures()
	src := &mockSource{}
	src.On("GetGlobal", mock.Anything).Return(g, nil).Twice()
	src.On("GetHistoricalAll", mock.Anything, 30).Return(tl, nil).Twice()
	src.On("Ping", mock.Anything).Return(nil).Once()

	c := NewCachedSource(src, time.Minute)
	for range 2 {
		_, err := c.GetGlobal(t.Context())
		require.NoError(t, err)
		_, err = c.GetHistoricalAll(t.Context(), 30)
		require.NoError(t, err)
	}
	require.NoError(t, c.Ping(t.Context()))
	src.AssertExpectations(t)
}
