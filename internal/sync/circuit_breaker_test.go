// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/covidtracker/internal/models"
)

func testBreakerConfig(name string) CircuitBreakerConfig {
	cfg := DefaultCircuitBreakerConfig()
	cfg.Name = name
	cfg.ConsecutiveFailures = 3
	cfg.Timeout = time.Hour
	return cfg
}

func TestCircuitBreakerPassesThrough(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	src.On("GetGlobal", mock.Anything).Return(&models.GlobalStat{AffectedCountries: 2}, nil)
	src.On("GetCountries", mock.Anything).Return([]models.CountryStat{{Country: "Chad"}}, nil)
	src.On("GetCountry", mock.Anything, "TD").Return(&models.CountryStat{Country: "Chad"}, nil)
	src.On("GetHistoricalAll", mock.Anything, 7).Return(&models.HistoricalTimeline{}, nil)
	src.On("Ping", mock.Anything).Return(nil)

	cbc := NewCircuitBreakerClient(src, testBreakerConfig("test-pass"))
	ctx := t.Context()

	g, err := cbc.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, g.AffectedCountries)

	countries, err := cbc.GetCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 1)

	c, err := cbc.GetCountry(ctx, "TD")
	require.NoError(t, err)
	assert.Equal(t, "Chad", c.Country)

	_, err = cbc.GetHistoricalAll(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, cbc.Ping(ctx))

	assert.Equal(t, gobreaker.StateClosed, cbc.State())
	src.AssertExpectations(t)
}

func TestCircuitBreakerTripsOnConsecutiveFailures(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	upstreamErr := &StatusError{Endpoint: pathGlobal, StatusCode: 502}
	src.On("GetGlobal", mock.Anything).Return(nil, upstreamErr).Times(3)

	cbc := NewCircuitBreakerClient(src, testBreakerConfig("test-trip"))

	for i := 0; i < 3; i++ {
		_, err := cbc.GetGlobal(t.Context())
		require.ErrorAs(t, err, new(*StatusError))
	}
	assert.Equal(t, gobreaker.StateOpen, cbc.State())

	_, err := cbc.GetGlobal(t.Context())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)

	// the upstream was not called once the breaker opened
	src.AssertNumberOfCalls(t, "GetGlobal", 3)
}

func TestCircuitBreakerIgnoresNotFoundAndCancel(t *testing.T) {
	t.Parallel()

	src := &mockSource{}
	src.On("GetCountry", mock.Anything, "XX").Return(nil, fmt.Errorf("get country: %w", ErrCountryNotFound))
	src.On("GetCountries", mock.Anything).Return(nil, fmt.Errorf("request failed: %w", context.Canceled))

	cbc := NewCircuitBreakerClient(src, testBreakerConfig("test-ignore"))

	for i := 0; i < 5; i++ {
		_, err := cbc.GetCountry(t.Context(), "XX")
		assert.ErrorIs(t, err, ErrCountryNotFound)
		_, err = cbc.GetCountries(t.Context())
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, cbc.State())
}

func TestIsUpstreamFault(t *testing.T) {
	t.Parallel()

	assert.False(t, isUpstreamFault(nil))
	assert.False(t, isUpstreamFault(ErrCountryNotFound))
	assert.False(t, isUpstreamFault(fmt.Errorf("wrap: %w", context.Canceled)))
	assert.True(t, isUpstreamFault(errors.New("boom")))
	assert.True(t, isUpstreamFault(context.DeadlineExceeded))
}

func TestCastResult(t *testing.T) {
	t.Parallel()

	g := &models.GlobalStat{AffectedCountries: 1}
	got, err := castResult[models.GlobalStat](g, nil)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = castResult[models.GlobalStat]("wrong", nil)
	assert.Error(t, err)

	sentinel := errors.New("x")
	_, err = castResult[models.GlobalStat](nil, sentinel)
	assert.ErrorIs(t, err, sentinel)
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", stateToString(gobreaker.StateClosed))
	assert.Equal(t, "half-open", stateToString(gobreaker.StateHalfOpen))
	assert.Equal(t, "open", stateToString(gobreaker.StateOpen))
	assert.InDelta(t, 2, stateToFloat(gobreaker.StateOpen), 0)
	assert.InDelta(t, 0, stateToFloat(gobreaker.StateClosed), 0)
}
