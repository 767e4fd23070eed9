// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package models

// StatField names a numeric count on a Counts block. The string values are the
// upstream JSON keys, so callers can pass them straight from a query string.
type StatField string

// Supported count fields.
const (
	FieldCases          StatField = "cases"
	FieldTodayCases     StatField = "todayCases"
	FieldDeaths         StatField = "deaths"
	FieldTodayDeaths    StatField = "todayDeaths"
	FieldRecovered      StatField = "recovered"
	FieldTodayRecovered StatField = "todayRecovered"
	FieldActive         StatField = "active"
	FieldCritical       StatField = "critical"
	FieldTests          StatField = "tests"
	FieldPopulation     StatField = "population"
)

// StatFields lists every supported count field in display order.
var StatFields = []StatField{
	FieldCases,
	FieldTodayCases,
	FieldDeaths,
	FieldTodayDeaths,
	FieldRecovered,
	FieldTodayRecovered,
	FieldActive,
	FieldCritical,
	FieldTests,
	FieldPopulation,
}

// Counts is the block of case counts shared by country and worldwide records.
//
// Every count is a pointer because the upstream may omit a field or send null
// for it (recovered figures stopped being reported for many countries).
// A nil count is treated as 0 by the transformer.
type Counts struct {
	Updated        int64  `json:"updated,omitempty"`
	Cases          *int64 `json:"cases"`
	TodayCases     *int64 `json:"todayCases"`
	Deaths         *int64 `json:"deaths"`
	TodayDeaths    *int64 `json:"todayDeaths"`
	Recovered      *int64 `json:"recovered"`
	TodayRecovered *int64 `json:"todayRecovered"`
	Active         *int64 `json:"active"`
	Critical       *int64 `json:"critical"`
	Tests          *int64 `json:"tests"`
	Population     *int64 `json:"population"`
}

// Get returns the count stored under field, or nil when the field is absent
// or not a known field name.
func (c *Counts) Get(field StatField) *int64 {
	switch field {
	case FieldCases:
		return c.Cases
	case FieldTodayCases:
		return c.TodayCases
	case FieldDeaths:
		return c.Deaths
	case FieldTodayDeaths:
		return c.TodayDeaths
	case FieldRecovered:
		return c.Recovered
	case FieldTodayRecovered:
		return c.TodayRecovered
	case FieldActive:
		return c.Active
	case FieldCritical:
		return c.Critical
	case FieldTests:
		return c.Tests
	case FieldPopulation:
		return c.Population
	default:
		return nil
	}
}

// Value returns the count under field with nil read as 0.
func (c *Counts) Value(field StatField) int64 {
	if v := c.Get(field); v != nil {
		return *v
	}
	return 0
}

// CountryInfo carries the identifying and geographic data for a country.
// ISO codes may be empty for territories the upstream cannot classify.
type CountryInfo struct {
	ID   *int    `json:"_id,omitempty"`
	ISO2 string  `json:"iso2"`
	ISO3 string  `json:"iso3"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Flag string  `json:"flag"`
}

// CountryStat is one country's statistics as returned by /v3/covid-19/countries.
type CountryStat struct {
	Country     string      `json:"country"`
	CountryInfo CountryInfo `json:"countryInfo"`
	Continent   string      `json:"continent,omitempty"`
	Counts
}

// GlobalStat is the worldwide aggregate returned by /v3/covid-19/all.
type GlobalStat struct {
	Counts
	AffectedCountries int `json:"affectedCountries"`
}

// CountryStat projects the worldwide totals onto the per-country shape so the
// dashboard can show "selected totals" with a single type.
func (g *GlobalStat) CountryStat() CountryStat {
	return CountryStat{Counts: g.Counts}
}

// HistoricalTimeline is the cumulative series returned by
// /v3/covid-19/historical/all. Keys are dates in M/D/YY form.
type HistoricalTimeline struct {
	Cases     map[string]int64 `json:"cases"`
	Deaths    map[string]int64 `json:"deaths"`
	Recovered map[string]int64 `json:"recovered"`
}

// Series returns the cumulative series for the given cases type.
func (h *HistoricalTimeline) Series(casesType CasesType) map[string]int64 {
	if h == nil {
		return nil
	}
	switch casesType {
	case CasesTypeDeaths:
		return h.Deaths
	case CasesTypeRecovered:
		return h.Recovered
	default:
		return h.Cases
	}
}

// Int64 returns a pointer to v. Handy for building fixtures.
func Int64(v int64) *int64 {
	return &v
}
