// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

const countryFixture = `{
	"updated": 1700000000000,
	"country": "Afghanistan",
	"countryInfo": {"_id": 4, "iso2": "AF", "iso3": "AFG", "lat": 33, "long": 65, "flag": "https://disease.sh/assets/img/flags/af.png"},
	"cases": 234174,
	"todayCases": 0,
	"deaths": 7996,
	"todayDeaths": 0,
	"recovered": null,
	"active": 226178,
	"critical": 0,
	"population": 40754388,
	"continent": "Asia"
}`

func TestCountryStatDecode(t *testing.T) {
	t.Parallel()

	var stat CountryStat
	if err := json.Unmarshal([]byte(countryFixture), &stat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if stat.Country != "Afghanistan" {
		t.Errorf("Country = %q, want Afghanistan", stat.Country)
	}
	if stat.CountryInfo.ISO2 != "AF" {
		t.Errorf("ISO2 = %q, want AF", stat.CountryInfo.ISO2)
	}
	if stat.Cases == nil || *stat.Cases != 234174 {
		t.Errorf("Cases = %v, want 234174", stat.Cases)
	}
	if stat.Recovered != nil {
		t.Errorf("Recovered = %v, want nil for null", *stat.Recovered)
	}
	if stat.Tests != nil {
		t.Errorf("Tests = %v, want nil for missing field", *stat.Tests)
	}
	if stat.TodayCases == nil || *stat.TodayCases != 0 {
		t.Error("TodayCases should be a present zero, not nil")
	}
}

func TestCountsGetAndValue(t *testing.T) {
	t.Parallel()

	c := Counts{Cases: Int64(10), Deaths: Int64(-3), Population: Int64(1000)}

	tests := []struct {
		field   StatField
		wantNil bool
		want    int64
	}{
		{FieldCases, false, 10},
		{FieldDeaths, false, -3},
		{FieldPopulation, false, 1000},
		{FieldRecovered, true, 0},
		{StatField("bogus"), true, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			t.Parallel()
			if got := c.Get(tt.field); (got == nil) != tt.wantNil {
				t.Errorf("Get(%q) nil = %v, want %v", tt.field, got == nil, tt.wantNil)
			}
			if got := c.Value(tt.field); got != tt.want {
				t.Errorf("Value(%q) = %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

func TestGlobalStatProjection(t *testing.T) {
	t.Parallel()

	g := GlobalStat{Counts: Counts{Cases: Int64(700000000)}, AffectedCountries: 231}
	cs := g.CountryStat()

	if cs.Country != "" || cs.CountryInfo.ISO2 != "" {
		t.Errorf("projection should have empty identity, got %q/%q", cs.Country, cs.CountryInfo.ISO2)
	}
	if cs.Value(FieldCases) != 700000000 {
		t.Errorf("projected cases = %d, want 700000000", cs.Value(FieldCases))
	}
}

func TestCasesType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		want      CasesType
		today     StatField
		titlePart string
	}{
		{"cases", CasesTypeCases, FieldTodayCases, "Cases"},
		{"Recovered", CasesTypeRecovered, FieldTodayRecovered, "Recovered"},
		{" deaths ", CasesTypeDeaths, FieldTodayDeaths, "Deaths"},
		{"unknown", CasesTypeCases, FieldTodayCases, "Cases"},
		{"", CasesTypeCases, FieldTodayCases, "Cases"},
	}

	for _, tt := range tests {
		got := ParseCasesType(tt.in)
		if got != tt.want {
			t.Errorf("ParseCasesType(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got.TodayField() != tt.today {
			t.Errorf("%q.TodayField() = %q, want %q", got, got.TodayField(), tt.today)
		}
		if got.TotalField() != StatField(tt.want) {
			t.Errorf("%q.TotalField() = %q", got, got.TotalField())
		}
		if title := got.Title(); len(title) == 0 || !strings.Contains(title, tt.titlePart) {
			t.Errorf("%q.Title() = %q, want it to mention %q", got, title, tt.titlePart)
		}
	}

	if CasesType("bogus").Valid() {
		t.Error("bogus cases type should not be valid")
	}
}

func TestHistoricalSeries(t *testing.T) {
	t.Parallel()

	h := &HistoricalTimeline{
		Cases:     map[string]int64{"1/1/21": 1},
		Deaths:    map[string]int64{"1/1/21": 2},
		Recovered: map[string]int64{"1/1/21": 3},
	}

	if h.Series(CasesTypeDeaths)["1/1/21"] != 2 {
		t.Error("deaths series mismatch")
	}
	if h.Series(CasesTypeRecovered)["1/1/21"] != 3 {
		t.Error("recovered series mismatch")
	}
	if h.Series(CasesTypeCases)["1/1/21"] != 1 {
		t.Error("cases series mismatch")
	}

	var nilTimeline *HistoricalTimeline
	if nilTimeline.Series(CasesTypeCases) != nil {
		t.Error("nil timeline should yield nil series")
	}
}
