// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

// Request structs carry go-playground/validator tags. The custom tags
// (casestype, country, sortfield) are registered by internal/validation.
//
// Query parameters are read into these structs by the handlers and then
// passed through validateRequest:
//
//	req := CountriesRequest{Sort: queryOr(r, "sort", "cases")}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}

// CountriesRequest is the query of GET /countries.
type CountriesRequest struct {
	Sort string `query:"sort" validate:"required,sortfield"`
}

// CasesTypeQuery is the optional cases_type query of /map and /historical.
// Empty means the current state's cases type.
type CasesTypeQuery struct {
	CasesType string `query:"cases_type" validate:"omitempty,casestype"`
}

// CountryPathRequest is the {code} path parameter of GET /countries/{code}.
type CountryPathRequest struct {
	Code string `query:"code" validate:"required,country"`
}

// SelectCountryRequest is the body of POST /selection/country.
type SelectCountryRequest struct {
	Country string `json:"country" validate:"required,country"`
}

// SelectCasesTypeRequest is the body of POST /selection/cases-type.
type SelectCasesTypeRequest struct {
	CasesType string `json:"cases_type" validate:"required,casestype"`
}
