// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"time"

	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
)

// TableTitle is the heading shown above the country table.
const TableTitle = "Live Cases by Country"

// View is the presentation model derived from a State. It is what the
// REST snapshot and the WebSocket broadcasts carry.
type View struct {
	Version         uint64                  `json:"version"`
	UpdatedAt       time.Time               `json:"updated_at"`
	Ready           bool                    `json:"ready"`
	SelectedCountry string                  `json:"selected_country"`
	CasesType       models.CasesType        `json:"cases_type"`
	InfoBoxes       []InfoBox               `json:"info_boxes"`
	Options         []models.DropdownOption `json:"options"`
	Table           Table                   `json:"table"`
	Map             MapModel                `json:"map"`
	Chart           ChartModel              `json:"chart"`
	Loaded          Loaded                  `json:"loaded"`
	Errors          map[Slice]string        `json:"errors,omitempty"`
}

// InfoBox is one of the three summary boxes.
type InfoBox struct {
	CasesType models.CasesType `json:"cases_type"`
	Title     string           `json:"title"`
	Active    bool             `json:"active"`
	IsRed     bool             `json:"is_red"`
	Today     string           `json:"today"`
	Total     string           `json:"total"`
}

// Table is the country table sorted by total cases.
type Table struct {
	Title string     `json:"title"`
	Rows  []TableRow `json:"rows"`
}

// TableRow is one row of the country table.
type TableRow struct {
	Country string `json:"country"`
	Code    string `json:"code"`
	Flag    string `json:"flag,omitempty"`
	Cases   string `json:"cases"`
}

// MapModel is the map viewport plus its circles.
type MapModel struct {
	models.MapView
	CasesType models.CasesType   `json:"cases_type"`
	Markers   []models.MapMarker `json:"markers"`
}

// ChartModel is the worldwide daily-new line chart.
type ChartModel struct {
	Title     string              `json:"title"`
	CasesType models.CasesType    `json:"cases_type"`
	Color     string              `json:"color"`
	Points    []models.ChartPoint `json:"points"`
}

// Render derives the full View from s.
func Render(s State) View {
	return View{
		Version:         s.Version,
		UpdatedAt:       s.UpdatedAt,
		Ready:           s.Ready(),
		SelectedCountry: s.SelectedCode,
		CasesType:       s.CasesType,
		InfoBoxes:       InfoBoxes(s.Selected, s.CasesType),
		Options:         s.Options,
		Table:           TableFor(s.TableData),
		Map:             MapFor(s),
		Chart:           ChartFor(s.Timeline, s.CasesType),
		Loaded:          s.Loaded,
		Errors:          s.Errors,
	}
}

// InfoBoxes returns the cases, recovered and deaths boxes for stat.
func InfoBoxes(stat models.CountryStat, active models.CasesType) []InfoBox {
	boxes := make([]InfoBox, 0, len(models.CasesTypes))
	for _, ct := range models.CasesTypes {
		boxes = append(boxes, InfoBox{
			CasesType: ct,
			Title:     ct.Title(),
			Active:    ct == active,
			IsRed:     ct != models.CasesTypeRecovered,
			Today:     SignedLabel(stat.Get(ct.TodayField())),
			Total:     stats.FormatStat(stat.Get(ct.TotalField())),
		})
	}
	return boxes
}

// SignedLabel formats a daily delta with an explicit sign: "+1,234",
// "-5", and "+0" for a missing value.
func SignedLabel(v *int64) string {
	if v != nil && *v < 0 {
		return stats.FormatStat(v)
	}
	return "+" + stats.FormatStat(v)
}

// TableFor renders already-sorted records as table rows.
func TableFor(records []models.CountryStat) Table {
	rows := make([]TableRow, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, TableRow{
			Country: r.Country,
			Code:    r.CountryInfo.ISO2,
			Flag:    r.CountryInfo.Flag,
			Cases:   stats.FormatStat(r.Cases),
		})
	}
	return Table{Title: TableTitle, Rows: rows}
}

// MapFor renders the map for the state's viewport and cases type.
func MapFor(s State) MapModel {
	return MapModel{
		MapView:   s.Map,
		CasesType: s.CasesType,
		Markers:   stats.MapMarkers(s.Countries, s.CasesType),
	}
}

// ChartFor renders the daily-new chart for casesType.
func ChartFor(timeline *models.HistoricalTimeline, casesType models.CasesType) ChartModel {
	return ChartModel{
		Title:     stats.ChartTitle(casesType),
		CasesType: casesType,
		Color:     stats.StyleFor(casesType).Color,
		Points:    stats.BuildChartData(timeline, casesType),
	}
}
