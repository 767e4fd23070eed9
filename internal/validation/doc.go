// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

// Package validation provides struct validation using go-playground/validator v10.
//
// A singleton validator is built once with three domain tags:
//
//   - casestype: cases, recovered or deaths
//   - country: "worldwide", an iso2/iso3 code, or a country name up to 64 characters
//   - sortfield: a count field accepted by the stats transformer
//
// Field names in errors come from the json (or query) struct tag, so
// messages name the field the client actually sent.
//
//	type SelectCountryRequest struct {
//	    Country string `json:"country" validate:"required,country"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
