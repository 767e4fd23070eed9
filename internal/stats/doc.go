// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package stats transforms raw upstream records into view-ready values.

Functions in this package are pure: they never mutate their inputs, never
return errors, and are safe to call from any goroutine.

Transforms:

  - SortByField: stable descending sort on any count field (missing reads as 0)
  - FormatStat: thousands-grouped integer string, "0" for absent values
  - DropdownOptions: country selector entries headed by "Worldwide"
  - BuildChartData: daily-new series from a cumulative timeline
  - MapMarkers: one sized and colored circle per country
  - MapCenterFor: viewport for a selection

Example:

	table := stats.SortByField(countries, models.FieldCases)
	for _, c := range table {
	    fmt.Println(c.Country, stats.FormatStat(c.Cases))
	}
*/
package stats
