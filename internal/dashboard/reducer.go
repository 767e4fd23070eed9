// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"maps"
	"slices"
	"strings"

	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
)

// Reduce applies ev to s and returns the next state.
//
// Reduce is pure: it performs no I/O, reads no clock and leaves s untouched.
// Every recognized event bumps Version. An unknown event, or a
// CasesTypeChanged with an invalid type, returns s unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case GlobalLoaded:
		g := e.Global
		s.Global = &g
		s.Loaded.Global = true
		s.Errors = withoutError(s.Errors, SliceGlobal)
		// The selected totals follow the global aggregate until a country
		// is picked.
		if s.IsWorldwide() {
			s.Selected = g.CountryStat()
		}

	case CountriesLoaded:
		countries := slices.Clone(e.Countries)
		if countries == nil {
			countries = []models.CountryStat{}
		}
		s.Countries = countries
		s.TableData = stats.SortByField(countries, models.FieldCases)
		s.Options = stats.DropdownOptions(countries)
		s.Loaded.Countries = true
		s.Errors = withoutError(s.Errors, SliceCountries)

	case HistoricalLoaded:
		tl := cloneTimeline(e.Timeline)
		s.Timeline = &tl
		s.Loaded.Historical = true
		s.Errors = withoutError(s.Errors, SliceHistorical)

	case CountrySelected:
		code := strings.TrimSpace(e.Code)
		if stats.IsWorldwide(code) {
			code = models.WorldwideCode
		}
		stat := e.Stat
		s.SelectedCode = code
		s.Selected = stat
		s.Map = stats.MapCenterFor(code, &stat, s.Defaults.Map, s.Defaults.SelectedZoom)
		s.Loaded.Selection = true
		s.Errors = withoutError(s.Errors, SliceSelection)

	case CasesTypeChanged:
		if !e.CasesType.Valid() {
			return s
		}
		s.CasesType = e.CasesType

	case FetchFailed:
		s.Errors = withError(s.Errors, e.Slice, e.Err)

	default:
		return s
	}

	s.Version++
	if at := ev.OccurredAt(); !at.IsZero() {
		s.UpdatedAt = at
	}
	return s
}

func withError(errs map[Slice]string, slice Slice, msg string) map[Slice]string {
	next := maps.Clone(errs)
	if next == nil {
		next = make(map[Slice]string, 1)
	}
	next[slice] = msg
	return next
}

func withoutError(errs map[Slice]string, slice Slice) map[Slice]string {
	if _, ok := errs[slice]; !ok {
		return errs
	}
	next := maps.Clone(errs)
	delete(next, slice)
	return next
}

func cloneTimeline(tl models.HistoricalTimeline) models.HistoricalTimeline {
	return models.HistoricalTimeline{
		Cases:     maps.Clone(tl.Cases),
		Deaths:    maps.Clone(tl.Deaths),
		Recovered: maps.Clone(tl.Recovered),
	}
}
