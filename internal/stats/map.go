// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package stats

import (
	"math"
	"strings"

	"github.com/tomtom215/covidtracker/internal/models"
)

// Default map viewport before any selection.
const (
	DefaultMapLat  = 34.80746
	DefaultMapLng  = -40.4796
	DefaultMapZoom = 3

	// SelectedMapZoom is applied when the map recentres on a selected country.
	SelectedMapZoom = 4
)

// MarkerStyle controls how a cases type is drawn on the map.
type MarkerStyle struct {
	Color      string
	Multiplier float64
}

var markerStyles = map[models.CasesType]MarkerStyle{
	models.CasesTypeCases:     {Color: "#CC1034", Multiplier: 800},
	models.CasesTypeRecovered: {Color: "#7dd71d", Multiplier: 1200},
	models.CasesTypeDeaths:    {Color: "#fb4443", Multiplier: 2000},
}

// StyleFor returns the marker style for casesType (cases style when unknown).
func StyleFor(casesType models.CasesType) MarkerStyle {
	if s, ok := markerStyles[casesType]; ok {
		return s
	}
	return markerStyles[models.CasesTypeCases]
}

// DefaultMapView returns the initial viewport.
func DefaultMapView() models.MapView {
	return models.MapView{
		Center: models.LatLng{Lat: DefaultMapLat, Lng: DefaultMapLng},
		Zoom:   DefaultMapZoom,
	}
}

// MapMarkers builds one circle per country for casesType.
// The radius is sqrt(count) scaled by the type's multiplier; a missing or
// negative count gives radius 0.
func MapMarkers(countries []models.CountryStat, casesType models.CasesType) []models.MapMarker {
	style := StyleFor(casesType)
	field := casesType.TotalField()
	if !casesType.Valid() {
		field = models.FieldCases
	}

	markers := make([]models.MapMarker, 0, len(countries))
	for i := range countries {
		c := &countries[i]
		value := c.Value(field)

		radius := 0.0
		if value > 0 {
			radius = math.Sqrt(float64(value)) * style.Multiplier
		}

		markers = append(markers, models.MapMarker{
			Country: c.Country,
			Code:    c.CountryInfo.ISO2,
			Flag:    c.CountryInfo.Flag,
			Lat:     c.CountryInfo.Lat,
			Lng:     c.CountryInfo.Long,
			Radius:  radius,
			Color:   style.Color,
			Value:   value,
		})
	}
	return markers
}

// MapCenterFor returns the viewport after selecting code.
// Worldwide (or a nil stat) resets to fallback; any other code centres on the
// country's coordinates at selectedZoom.
func MapCenterFor(code string, stat *models.CountryStat, fallback models.MapView, selectedZoom int) models.MapView {
	if IsWorldwide(code) || stat == nil {
		return fallback
	}
	return models.MapView{
		Center: models.LatLng{Lat: stat.CountryInfo.Lat, Lng: stat.CountryInfo.Long},
		Zoom:   selectedZoom,
	}
}

// IsWorldwide reports whether code selects the global aggregate.
func IsWorldwide(code string) bool {
	code = strings.TrimSpace(code)
	return code == "" || strings.EqualFold(code, models.WorldwideCode)
}
