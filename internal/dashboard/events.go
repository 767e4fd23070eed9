// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"time"

	"github.com/tomtom215/covidtracker/internal/models"
)

// EventType identifies a state event. Values are used as metric labels and
// in published message metadata.
type EventType string

// Event types, one reducer branch each.
const (
	EventGlobalLoaded     EventType = "global_loaded"
	EventCountriesLoaded  EventType = "countries_loaded"
	EventHistoricalLoaded EventType = "historical_loaded"
	EventCountrySelected  EventType = "country_selected"
	EventCasesTypeChanged EventType = "cases_type_changed"
	EventFetchFailed      EventType = "fetch_failed"
)

// Event is anything the reducer understands.
type Event interface {
	Type() EventType
	OccurredAt() time.Time
}

// GlobalLoaded carries a fresh worldwide aggregate.
type GlobalLoaded struct {
	Global models.GlobalStat
	At     time.Time
}

// CountriesLoaded carries a fresh country list.
type CountriesLoaded struct {
	Countries []models.CountryStat
	At        time.Time
}

// HistoricalLoaded carries a fresh worldwide timeline.
type HistoricalLoaded struct {
	Timeline models.HistoricalTimeline
	At       time.Time
}

// CountrySelected carries the totals for a newly selected key. Code is
// models.WorldwideCode for the global aggregate.
type CountrySelected struct {
	Code string
	Stat models.CountryStat
	At   time.Time
}

// CasesTypeChanged switches the counter that drives the map and chart.
type CasesTypeChanged struct {
	CasesType models.CasesType
	At        time.Time
}

// FetchFailed records a failed fetch for one slice. The previous data for
// that slice is kept.
type FetchFailed struct {
	Slice Slice
	Err   string
	At    time.Time
}

func (GlobalLoaded) Type() EventType     { return EventGlobalLoaded }
func (CountriesLoaded) Type() EventType  { return EventCountriesLoaded }
func (HistoricalLoaded) Type() EventType { return EventHistoricalLoaded }
func (CountrySelected) Type() EventType  { return EventCountrySelected }
func (CasesTypeChanged) Type() EventType { return EventCasesTypeChanged }
func (FetchFailed) Type() EventType      { return EventFetchFailed }

func (e GlobalLoaded) OccurredAt() time.Time     { return e.At }
func (e CountriesLoaded) OccurredAt() time.Time  { return e.At }
func (e HistoricalLoaded) OccurredAt() time.Time { return e.At }
func (e CountrySelected) OccurredAt() time.Time  { return e.At }
func (e CasesTypeChanged) OccurredAt() time.Time { return e.At }
func (e FetchFailed) OccurredAt() time.Time      { return e.At }
