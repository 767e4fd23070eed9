// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package stats

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/covidtracker/internal/models"
)

// TimelineDateLayout is the upstream date key format (M/D/YY).
const TimelineDateLayout = "1/2/06"

type datedValue struct {
	key  string
	date time.Time
	val  int64
}

// BuildChartData converts a cumulative timeline into daily-new points for
// casesType. Points are in date order. The first date only seeds the baseline
// and produces no point. Keys that do not parse as M/D/YY are skipped.
// Negative deltas (upstream corrections) are kept.
func BuildChartData(timeline *models.HistoricalTimeline, casesType models.CasesType) []models.ChartPoint {
	series := timeline.Series(casesType)
	if len(series) == 0 {
		return []models.ChartPoint{}
	}

	dated := make([]datedValue, 0, len(series))
	for key, val := range series {
		d, err := time.Parse(TimelineDateLayout, key)
		if err != nil {
			continue
		}
		dated = append(dated, datedValue{key: key, date: d, val: val})
	}

	slices.SortFunc(dated, func(a, b datedValue) int {
		return cmp.Or(a.date.Compare(b.date), strings.Compare(a.key, b.key))
	})
	// "1/1/21" and "01/01/21" name the same day; keep the lexically smaller key
	dated = slices.CompactFunc(dated, func(a, b datedValue) bool {
		return a.date.Equal(b.date)
	})

	if len(dated) < 2 {
		return []models.ChartPoint{}
	}

	points := make([]models.ChartPoint, 0, len(dated)-1)
	for i := 1; i < len(dated); i++ {
		points = append(points, models.ChartPoint{
			X: dated[i].key,
			Y: dated[i].val - dated[i-1].val,
		})
	}
	return points
}

// ChartTitle returns the heading shown above the chart.
func ChartTitle(casesType models.CasesType) string {
	return "Worldwide new " + string(cmp.Or(casesType, models.CasesTypeCases))
}
