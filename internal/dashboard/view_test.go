// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/covidtracker/internal/models"
)

func TestSignedLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   *int64
		want string
	}{
		{models.Int64(1234), "+1,234"},
		{models.Int64(0), "+0"},
		{models.Int64(-5), "-5"},
		{nil, "+0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignedLabel(tt.in))
	}
}

func TestInfoBoxes(t *testing.T) {
	t.Parallel()

	stat := models.CountryStat{Counts: models.Counts{
		Cases:       models.Int64(1500000),
		TodayCases:  models.Int64(320),
		Deaths:      models.Int64(4000),
		TodayDeaths: models.Int64(3),
	}}

	boxes := InfoBoxes(stat, models.CasesTypeDeaths)
	require.Len(t, boxes, 3)

	assert.Equal(t, "Coronavirus Cases", boxes[0].Title)
	assert.Equal(t, "+320", boxes[0].Today)
	assert.Equal(t, "1,500,000", boxes[0].Total)
	assert.True(t, boxes[0].IsRed)
	assert.False(t, boxes[0].Active)

	assert.Equal(t, models.CasesTypeRecovered, boxes[1].CasesType)
	assert.Equal(t, "+0", boxes[1].Today, "missing recovered reads as zero")
	assert.Equal(t, "0", boxes[1].Total)
	assert.False(t, boxes[1].IsRed)

	assert.True(t, boxes[2].Active)
	assert.Equal(t, "4,000", boxes[2].Total)
}

func TestRender(t *testing.T) {
	t.Parallel()

	s := InitialState(DefaultDefaults())
	s = Reduce(s, GlobalLoaded{Global: models.GlobalStat{Counts: models.Counts{Cases: models.Int64(30)}}, At: testTime})
	s = Reduce(s, CountriesLoaded{Countries: []models.CountryStat{
		country("Aland", "AX", 10, 60, 20),
		country("Brazil", "BR", 20, -10, -55),
	}, At: testTime})
	s = Reduce(s, HistoricalLoaded{Timeline: models.HistoricalTimeline{
		Cases: map[string]int64{"1/1/21": 10, "1/2/21": 15},
	}, At: testTime})
	s = Reduce(s, CasesTypeChanged{CasesType: models.CasesTypeCases, At: testTime})

	v := Render(s)

	assert.Equal(t, uint64(4), v.Version)
	assert.True(t, v.Ready)
	assert.Equal(t, models.WorldwideCode, v.SelectedCountry)
	assert.Equal(t, "30", v.InfoBoxes[0].Total)

	require.Len(t, v.Table.Rows, 2)
	assert.Equal(t, TableTitle, v.Table.Title)
	assert.Equal(t, "Brazil", v.Table.Rows[0].Country)
	assert.Equal(t, "20", v.Table.Rows[0].Cases)

	require.Len(t, v.Map.Markers, 2)
	assert.Equal(t, "Aland", v.Map.Markers[0].Country, "map keeps upstream order")
	assert.Equal(t, 3, v.Map.Zoom)

	assert.Equal(t, "Worldwide new cases", v.Chart.Title)
	require.Len(t, v.Chart.Points, 1)
	assert.Equal(t, int64(5), v.Chart.Points[0].Y)
	assert.Len(t, v.Options, 3)
}
