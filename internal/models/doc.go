// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
Package models defines the data structures shared across the dashboard.

Upstream Models (decoded from disease.sh, camelCase JSON):

  - CountryStat: one country's counts plus CountryInfo (ISO codes, coordinates, flag)
  - GlobalStat: the worldwide aggregate
  - HistoricalTimeline: cumulative cases/deaths/recovered keyed by M/D/YY dates

Dashboard Models (produced for the presentation layer, snake_case JSON):

  - DropdownOption: country selector entry
  - CasesType: the active counter (cases, recovered, deaths)
  - MapView, MapMarker, LatLng: map viewport and circles
  - ChartPoint: daily-new series point

All values are created per response and never mutated afterwards. Count
fields are pointers so a missing or null upstream value stays distinguishable
from a real zero; Counts.Value reads nil as 0.
*/
package models
