// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func country(name, iso2 string, cases int64, lat, lng float64) models.CountryStat {
	return models.CountryStat{
		Country:     name,
		CountryInfo: models.CountryInfo{ISO2: iso2, Lat: lat, Long: lng},
		Counts:      models.Counts{Cases: models.Int64(cases)},
	}
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	s := InitialState(DefaultDefaults())

	assert.Equal(t, models.WorldwideCode, s.SelectedCode)
	assert.Equal(t, models.CasesTypeCases, s.CasesType)
	assert.Equal(t, stats.DefaultMapView(), s.Map)
	assert.Equal(t, []models.DropdownOption{models.WorldwideOption()}, s.Options)
	assert.Empty(t, s.Countries)
	assert.False(t, s.Ready())
	assert.Zero(t, s.Version)
}

func TestInitialStateInvalidCasesType(t *testing.T) {
	t.Parallel()

	d := DefaultDefaults()
	d.CasesType = "bogus"
	assert.Equal(t, models.CasesTypeCases, InitialState(d).CasesType)
}

func TestReduceGlobalLoadedMirrorsWhileWorldwide(t *testing.T) {
	t.Parallel()

	s0 := InitialState(DefaultDefaults())
	g := models.GlobalStat{Counts: models.Counts{Cases: models.Int64(1000)}, AffectedCountries: 2}

	s1 := Reduce(s0, GlobalLoaded{Global: g, At: testTime})

	require.NotNil(t, s1.Global)
	assert.Equal(t, int64(1000), s1.Global.Value(models.FieldCases))
	assert.Equal(t, int64(1000), s1.Selected.Value(models.FieldCases))
	assert.True(t, s1.Loaded.Global)
	assert.Equal(t, uint64(1), s1.Version)
	assert.Equal(t, testTime, s1.UpdatedAt)

	// input untouched
	assert.Nil(t, s0.Global)
	assert.Zero(t, s0.Version)
}

func TestReduceGlobalLoadedKeepsCountrySelection(t *testing.T) {
	t.Parallel()

	de := country("Germany", "DE", 500, 51, 9)
	s := Reduce(InitialState(DefaultDefaults()), CountrySelected{Code: "DE", Stat: de, At: testTime})
	s = Reduce(s, GlobalLoaded{Global: models.GlobalStat{Counts: models.Counts{Cases: models.Int64(9999)}}, At: testTime})

	assert.Equal(t, "DE", s.SelectedCode)
	assert.Equal(t, int64(500), s.Selected.Value(models.FieldCases))
	assert.Equal(t, int64(9999), s.Global.Value(models.FieldCases))
}

func TestReduceCountriesLoaded(t *testing.T) {
	t.Parallel()

	countries := []models.CountryStat{
		country("Aland", "AX", 10, 60, 20),
		country("Brazil", "BR", 300, -10, -55),
		country("Chad", "TD", 50, 15, 19),
	}
	s0 := InitialState(DefaultDefaults())
	s1 := Reduce(s0, CountriesLoaded{Countries: countries, At: testTime})

	assert.Equal(t, countries, s1.Countries, "upstream order kept for the map")
	require.Len(t, s1.TableData, 3)
	assert.Equal(t, "Brazil", s1.TableData[0].Country)
	assert.Equal(t, "Chad", s1.TableData[1].Country)
	assert.Equal(t, "Aland", s1.TableData[2].Country)

	require.Len(t, s1.Options, 4)
	assert.Equal(t, models.WorldwideOption(), s1.Options[0])
	assert.Equal(t, models.DropdownOption{DisplayName: "Aland", Code: "AX"}, s1.Options[1])
	assert.True(t, s1.Loaded.Countries)

	// the caller's slice must not be shared with the state
	countries[0].Country = "changed"
	assert.Equal(t, "Aland", s1.Countries[0].Country)
}

func TestReduceCountriesLoadedNil(t *testing.T) {
	t.Parallel()

	s := Reduce(InitialState(DefaultDefaults()), CountriesLoaded{At: testTime})
	assert.NotNil(t, s.Countries)
	assert.Empty(t, s.TableData)
	assert.Len(t, s.Options, 1)
}

func TestReduceCountrySelected(t *testing.T) {
	t.Parallel()

	d := DefaultDefaults()
	s0 := InitialState(d)

	tests := []struct {
		name     string
		code     string
		stat     models.CountryStat
		wantCode string
		wantView models.MapView
	}{
		{
			name:     "country centres on coordinates",
			code:     "FR",
			stat:     country("France", "FR", 1, 46, 2),
			wantCode: "FR",
			wantView: models.MapView{Center: models.LatLng{Lat: 46, Lng: 2}, Zoom: d.SelectedZoom},
		},
		{
			name:     "worldwide resets to default view",
			code:     "worldwide",
			stat:     models.CountryStat{},
			wantCode: models.WorldwideCode,
			wantView: d.Map,
		},
		{
			name:     "empty code is worldwide",
			code:     "  ",
			wantCode: models.WorldwideCode,
			wantView: d.Map,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Reduce(s0, CountrySelected{Code: tt.code, Stat: tt.stat, At: testTime})
			assert.Equal(t, tt.wantCode, s.SelectedCode)
			assert.Equal(t, tt.wantView, s.Map)
			assert.True(t, s.Loaded.Selection)
		})
	}
}

func TestReduceCasesTypeChanged(t *testing.T) {
	t.Parallel()

	s0 := InitialState(DefaultDefaults())

	s1 := Reduce(s0, CasesTypeChanged{CasesType: models.CasesTypeDeaths})
	assert.Equal(t, models.CasesTypeDeaths, s1.CasesType)
	assert.Equal(t, uint64(1), s1.Version)
	assert.True(t, s1.UpdatedAt.IsZero(), "zero event time leaves UpdatedAt alone")

	s2 := Reduce(s1, CasesTypeChanged{CasesType: "bogus"})
	assert.Equal(t, s1, s2, "invalid cases type is a no-op")
}

func TestReduceFetchFailedKeepsData(t *testing.T) {
	t.Parallel()

	s := Reduce(InitialState(DefaultDefaults()), CountriesLoaded{Countries: []models.CountryStat{country("Peru", "PE", 5, 0, 0)}})
	before := s

	s = Reduce(s, FetchFailed{Slice: SliceCountries, Err: "upstream 502"})
	assert.Equal(t, "upstream 502", s.Errors[SliceCountries])
	assert.Len(t, s.Countries, 1, "previous data is kept")
	assert.Empty(t, before.Errors, "error map is copied on write")

	s = Reduce(s, CountriesLoaded{Countries: []models.CountryStat{country("Peru", "PE", 6, 0, 0)}})
	assert.NotContains(t, s.Errors, SliceCountries)
}

func TestReduceHistoricalLoadedCopiesMaps(t *testing.T) {
	t.Parallel()

	tl := models.HistoricalTimeline{Cases: map[string]int64{"1/1/21": 1}}
	s := Reduce(InitialState(DefaultDefaults()), HistoricalLoaded{Timeline: tl})

	tl.Cases["1/1/21"] = 42
	require.NotNil(t, s.Timeline)
	assert.Equal(t, int64(1), s.Timeline.Cases["1/1/21"])
	assert.True(t, s.Loaded.Historical)
}

type unknownEvent struct{}

func (unknownEvent) Type() EventType       { return "unknown" }
func (unknownEvent) OccurredAt() time.Time { return testTime }

func TestReduceUnknownEvent(t *testing.T) {
	t.Parallel()

	s0 := InitialState(DefaultDefaults())
	assert.Equal(t, s0, Reduce(s0, unknownEvent{}))
}
