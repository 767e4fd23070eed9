// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tomtom215/covidtracker/internal/models"
)

// mockSource is a testify mock of DataSource.
type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetGlobal(ctx context.Context) (*models.GlobalStat, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).(*models.GlobalStat)
	return g, args.Error(1)
}

func (m *mockSource) GetCountries(ctx context.Context) ([]models.CountryStat, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.CountryStat)
	return c, args.Error(1)
}

func (m *mockSource) GetCountry(ctx context.Context, code string) (*models.CountryStat, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*models.CountryStat)
	return c, args.Error(1)
}

func (m *mockSource) GetHistoricalAll(ctx context.Context, days int) (*models.HistoricalTimeline, error) {
	args := m.Called(ctx, days)
	tl, _ := args.Get(0).(*models.HistoricalTimeline)
	return tl, args.Error(1)
}

func (m *mockSource) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
