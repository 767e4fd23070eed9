// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/covidtracker/internal/dashboard"
	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
	syncpkg "github.com/tomtom215/covidtracker/internal/sync"
	ws "github.com/tomtom215/covidtracker/internal/websocket"
)

// SummaryResponse is the payload of GET /summary.
type SummaryResponse struct {
	SelectedCountry string              `json:"selected_country"`
	CasesType       models.CasesType    `json:"cases_type"`
	InfoBoxes       []dashboard.InfoBox `json:"info_boxes"`
}

// CountriesResponse is the payload of GET /countries.
type CountriesResponse struct {
	Sort  models.StatField `json:"sort"`
	Count int              `json:"count"`
	dashboard.Table
}

// CountryDetail is the payload of GET /countries/{code}.
type CountryDetail struct {
	Country   string              `json:"country"`
	Code      string              `json:"code"`
	Flag      string              `json:"flag,omitempty"`
	Continent string              `json:"continent,omitempty"`
	InfoBoxes []dashboard.InfoBox `json:"info_boxes"`
	Stats     map[string]string   `json:"stats"`
}

// Dashboard returns the full rendered view.
//
// @Summary Get the dashboard view
// @Description Returns info boxes, dropdown options, the sorted table, the map and the chart rendered from the current state
// @Tags Dashboard
// @Produce json
// @Success 200 {object} api.APIResponse{data=dashboard.View} "Dashboard view"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	st := h.service.Snapshot()
	NewResponseWriter(w, r).SuccessVersioned(dashboard.Render(st), st.Version)
}

// Summary returns the three info boxes for the current selection.
//
// @Summary Get the info boxes
// @Description Returns today and total figures for cases, recovered and deaths of the selected country or worldwide
// @Tags Dashboard
// @Produce json
// @Success 200 {object} api.APIResponse{data=api.SummaryResponse} "Info boxes"
// @Router /summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	st := h.service.Snapshot()
	NewResponseWriter(w, r).SuccessVersioned(SummaryResponse{
		SelectedCountry: st.SelectedCode,
		CasesType:       st.CasesType,
		InfoBoxes:       dashboard.InfoBoxes(st.Selected, st.CasesType),
	}, st.Version)
}

// Countries returns the country table sorted by the requested field.
//
// @Summary List countries
// @Description Returns every country sorted descending by the given count field (default cases). Missing counts sort as zero.
// @Tags Dashboard
// @Produce json
// @Param sort query string false "Sort field" Enums(cases, todayCases, deaths, todayDeaths, recovered, todayRecovered, active, critical, tests, population)
// @Success 200 {object} api.APIResponse{data=api.CountriesResponse} "Sorted countries"
// @Failure 400 {object} api.APIResponse "Invalid sort field"
// @Router /countries [get]
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := CountriesRequest{Sort: queryOr(r, "sort", string(models.FieldCases))}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	st := h.service.Snapshot()
	field := models.StatField(req.Sort)
	sorted := stats.SortByField(st.Countries, field)

	rw.SuccessVersioned(CountriesResponse{
		Sort:  field,
		Count: len(sorted),
		Table: dashboard.TableFor(sorted),
	}, st.Version)
}

// Country fetches one country directly from the upstream. The dashboard
// selection is not changed.
//
// @Summary Get one country
// @Description Fetches a country by name, iso2 or iso3 and returns its formatted figures. "worldwide" returns the loaded global totals.
// @Tags Dashboard
// @Produce json
// @Param code path string true "Country name, iso2 or iso3"
// @Success 200 {object} api.APIResponse{data=api.CountryDetail} "Country figures"
// @Failure 400 {object} api.APIResponse "Invalid country"
// @Failure 404 {object} api.APIResponse "Unknown country"
// @Failure 502 {object} api.APIResponse "Upstream failure"
// @Failure 503 {object} api.APIResponse "Upstream circuit open"
// @Router /countries/{code} [get]
func (h *Handler) Country(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := CountryPathRequest{Code: strings.TrimSpace(chi.URLParam(r, "code"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	st := h.service.Snapshot()
	if stats.IsWorldwide(req.Code) {
		if st.Global == nil {
			rw.ServiceUnavailable("Global totals not loaded yet")
			return
		}
		rw.SuccessVersioned(countryDetail(st.Global.CountryStat(), models.WorldwideCode, st.CasesType), st.Version)
		return
	}

	stat, err := h.service.GetCountry(r.Context(), req.Code)
	if err != nil {
		respondSourceError(rw, r, err)
		return
	}
	rw.SuccessVersioned(countryDetail(*stat, stat.CountryInfo.ISO2, st.CasesType), st.Version)
}

func countryDetail(stat models.CountryStat, code string, active models.CasesType) CountryDetail {
	formatted := make(map[string]string, len(models.StatFields))
	for _, f := range models.StatFields {
		formatted[string(f)] = stats.FormatStat(stat.Get(f))
	}
	name := stat.Country
	if name == "" {
		name = models.WorldwideDisplayName
	}
	return CountryDetail{
		Country:   name,
		Code:      code,
		Flag:      stat.CountryInfo.Flag,
		Continent: stat.Continent,
		InfoBoxes: dashboard.InfoBoxes(stat, active),
		Stats:     formatted,
	}
}

// Options returns the country dropdown, worldwide first.
//
// @Summary Get dropdown options
// @Description Returns the synthetic worldwide option followed by one option per country in upstream order
// @Tags Dashboard
// @Produce json
// @Success 200 {object} api.APIResponse{data=[]models.DropdownOption} "Dropdown options"
// @Router /options [get]
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	st := h.service.Snapshot()
	NewResponseWriter(w, r).SuccessVersioned(st.Options, st.Version)
}

// Map returns the viewport and the circles for a cases type.
//
// @Summary Get the map
// @Description Returns the map center, zoom and one circle per country sized by the chosen counter
// @Tags Dashboard
// @Produce json
// @Param cases_type query string false "Cases type" Enums(cases, recovered, deaths)
// @Success 200 {object} api.APIResponse{data=dashboard.MapModel} "Map model"
// @Failure 400 {object} api.APIResponse "Invalid cases type"
// @Router /map [get]
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	st := h.service.Snapshot()

	casesType, ok := resolveCasesType(rw, r, st.CasesType)
	if !ok {
		return
	}
	st.CasesType = casesType
	rw.SuccessVersioned(dashboard.MapFor(st), st.Version)
}

// Historical returns the worldwide daily-new chart.
//
// @Summary Get the chart
// @Description Returns the worldwide daily-new series derived from the cumulative historical timeline
// @Tags Dashboard
// @Produce json
// @Param cases_type query string false "Cases type" Enums(cases, recovered, deaths)
// @Success 200 {object} api.APIResponse{data=dashboard.ChartModel} "Chart model"
// @Failure 400 {object} api.APIResponse "Invalid cases type"
// @Router /historical [get]
func (h *Handler) Historical(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	st := h.service.Snapshot()

	casesType, ok := resolveCasesType(rw, r, st.CasesType)
	if !ok {
		return
	}
	rw.SuccessVersioned(dashboard.ChartFor(st.Timeline, casesType), st.Version)
}

// SelectCountry changes the selected country, re-fetching its figures and
// recentring the map.
//
// @Summary Select a country
// @Description Fetches the country (or worldwide totals), updates the selection and map viewport and returns the new view
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body api.SelectCountryRequest true "Country to select"
// @Success 200 {object} api.APIResponse{data=dashboard.View} "Updated view"
// @Failure 400 {object} api.APIResponse "Invalid request"
// @Failure 404 {object} api.APIResponse "Unknown country"
// @Failure 502 {object} api.APIResponse "Upstream failure"
// @Failure 503 {object} api.APIResponse "Upstream circuit open"
// @Router /selection/country [post]
func (h *Handler) SelectCountry(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SelectCountryRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req.Country = strings.TrimSpace(req.Country)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	st, err := h.service.SelectCountry(r.Context(), req.Country)
	if err != nil {
		respondSourceError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("country", st.SelectedCode).
		Uint64("version", st.Version).
		Msg("Country selected")
	rw.SuccessVersioned(dashboard.Render(st), st.Version)
}

// SelectCasesType changes the counter that drives the map and the chart.
//
// @Summary Select a cases type
// @Description Switches the active counter and returns the new view
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body api.SelectCasesTypeRequest true "Cases type to select"
// @Success 200 {object} api.APIResponse{data=dashboard.View} "Updated view"
// @Failure 400 {object} api.APIResponse "Invalid request"
// @Router /selection/cases-type [post]
func (h *Handler) SelectCasesType(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SelectCasesTypeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req.CasesType = normalizeCasesType(req.CasesType)
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	st, err := h.service.SetCasesType(models.CasesType(req.CasesType))
	if err != nil {
		if errors.Is(err, syncpkg.ErrInvalidCasesType) {
			rw.ValidationError(err.Error(), nil)
			return
		}
		rw.InternalError("Failed to change cases type")
		return
	}
	rw.SuccessVersioned(dashboard.Render(st), st.Version)
}

// WebSocket upgrades to a WebSocket that receives a dashboard_update
// message with the full view on every state change.
//
// @Summary Dashboard updates stream
// @Description Upgrades to a WebSocket. The latest view is sent on connect and again after every state change.
// @Tags Dashboard
// @Success 101 "Switching protocols"
// @Failure 403 "Origin not allowed"
// @Failure 503 {object} api.APIResponse "WebSocket hub unavailable"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		NewResponseWriter(w, r).ServiceUnavailable("WebSocket hub not running")
		return
	}
	ws.ServeWS(h.wsHub, &h.upgrader, w, r)
}
