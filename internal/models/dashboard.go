// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package models

import "strings"

// WorldwideCode is the synthetic selection code for the global aggregate.
const WorldwideCode = "worldwide"

// WorldwideDisplayName is the dropdown label for WorldwideCode.
const WorldwideDisplayName = "Worldwide"

// DropdownOption is one entry of the country selector.
type DropdownOption struct {
	DisplayName string `json:"display_name"`
	Code        string `json:"code"`
}

// WorldwideOption returns the synthetic option that heads every dropdown.
func WorldwideOption() DropdownOption {
	return DropdownOption{DisplayName: WorldwideDisplayName, Code: WorldwideCode}
}

// CasesType selects which counter drives the map circles and the chart.
type CasesType string

// Cases types.
const (
	CasesTypeCases     CasesType = "cases"
	CasesTypeRecovered CasesType = "recovered"
	CasesTypeDeaths    CasesType = "deaths"
)

// CasesTypes lists every cases type in info-box order.
var CasesTypes = []CasesType{CasesTypeCases, CasesTypeRecovered, CasesTypeDeaths}

// Valid reports whether c is a known cases type.
func (c CasesType) Valid() bool {
	switch c {
	case CasesTypeCases, CasesTypeRecovered, CasesTypeDeaths:
		return true
	}
	return false
}

// Title returns the info-box heading for c.
func (c CasesType) Title() string {
	switch c {
	case CasesTypeRecovered:
		return "Recovered"
	case CasesTypeDeaths:
		return "Deaths"
	default:
		return "Coronavirus Cases"
	}
}

// TotalField returns the cumulative count field for c.
func (c CasesType) TotalField() StatField {
	return StatField(c)
}

// TodayField returns the daily count field for c (todayCases etc).
func (c CasesType) TodayField() StatField {
	s := string(c)
	if s == "" {
		return FieldTodayCases
	}
	return StatField("today" + strings.ToUpper(s[:1]) + s[1:])
}

// ParseCasesType converts s to a CasesType, falling back to cases.
func ParseCasesType(s string) CasesType {
	c := CasesType(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CasesTypeCases
}

// LatLng is a map coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapView is the map viewport.
type MapView struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// MapMarker is one circle drawn on the map for a country.
type MapMarker struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	Flag    string  `json:"flag,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
	Value   int64   `json:"value"`
}

// ChartPoint is one point of the daily-new line chart.
type ChartPoint struct {
	X string `json:"x"`
	Y int64  `json:"y"`
}
