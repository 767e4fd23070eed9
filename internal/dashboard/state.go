// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"time"

	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
)

// Slice names an independently loaded part of the state.
type Slice string

// State slices.
const (
	SliceGlobal     Slice = "global"
	SliceCountries  Slice = "countries"
	SliceHistorical Slice = "historical"
	SliceSelection  Slice = "selection"
)

// Defaults holds the configurable starting values.
type Defaults struct {
	CasesType    models.CasesType
	Map          models.MapView
	SelectedZoom int
}

// DefaultDefaults returns the built-in starting values.
func DefaultDefaults() Defaults {
	return Defaults{
		CasesType:    models.CasesTypeCases,
		Map:          stats.DefaultMapView(),
		SelectedZoom: stats.SelectedMapZoom,
	}
}

// Loaded reports which slices have received at least one successful fetch.
type Loaded struct {
	Global     bool `json:"global"`
	Countries  bool `json:"countries"`
	Historical bool `json:"historical"`
	Selection  bool `json:"selection"`
}

// State is the whole dashboard at one point in time.
//
// A State is a value: Reduce returns a new one and never modifies the slices,
// maps or pointers reachable from its input. Callers must treat them as
// read-only too.
type State struct {
	Defaults Defaults

	SelectedCode string
	Selected     models.CountryStat
	Global       *models.GlobalStat

	Countries []models.CountryStat // upstream order, drives the map
	TableData []models.CountryStat // sorted by cases, drives the table
	Options   []models.DropdownOption

	CasesType models.CasesType
	Map       models.MapView
	Timeline  *models.HistoricalTimeline

	Loaded Loaded
	Errors map[Slice]string

	Version   uint64
	UpdatedAt time.Time
}

// InitialState returns the state before any fetch has completed.
func InitialState(d Defaults) State {
	if !d.CasesType.Valid() {
		d.CasesType = models.CasesTypeCases
	}
	return State{
		Defaults:     d,
		SelectedCode: models.WorldwideCode,
		Countries:    []models.CountryStat{},
		TableData:    []models.CountryStat{},
		Options:      []models.DropdownOption{models.WorldwideOption()},
		CasesType:    d.CasesType,
		Map:          d.Map,
		Errors:       map[Slice]string{},
	}
}

// Ready reports whether both startup slices the dashboard needs to render
// (global totals and the country list) have loaded.
func (s State) Ready() bool {
	return s.Loaded.Global && s.Loaded.Countries
}

// IsWorldwide reports whether the current selection is the global aggregate.
func (s State) IsWorldwide() bool {
	return stats.IsWorldwide(s.SelectedCode)
}

// DefaultsFromConfig converts the dashboard config section.
func DefaultsFromConfig(cfg *config.DashboardConfig) Defaults {
	return Defaults{
		CasesType: models.ParseCasesType(cfg.DefaultCasesType),
		Map: models.MapView{
			Center: models.LatLng{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
			Zoom:   cfg.DefaultZoom,
		},
		SelectedZoom: cfg.SelectedZoom,
	}
}
