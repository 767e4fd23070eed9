// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/models"
	syncpkg "github.com/tomtom215/covidtracker/internal/sync"
	"github.com/tomtom215/covidtracker/internal/validation"
)

// maxBodySize bounds selection request bodies.
const maxBodySize = 4 << 10

// validateRequest runs the validator and converts failures to an APIError.
func validateRequest(v any) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// queryOr returns the trimmed query parameter key, or def when it is empty.
func queryOr(r *http.Request, key, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return def
}

// decodeJSONBody decodes a bounded JSON body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// normalizeCasesType lowercases and trims a cases type before validation.
func normalizeCasesType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolveCasesType validates an optional cases_type query parameter and
// falls back to current when it is absent.
func resolveCasesType(rw *ResponseWriter, r *http.Request, current models.CasesType) (models.CasesType, bool) {
	req := CasesTypeQuery{CasesType: normalizeCasesType(r.URL.Query().Get("cases_type"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return "", false
	}
	if req.CasesType == "" {
		return current, true
	}
	return models.CasesType(req.CasesType), true
}

// respondSourceError maps an upstream fetch error to a status code:
// unknown country 404, open breaker 503, anything else 502.
func respondSourceError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, syncpkg.ErrCountryNotFound):
		rw.NotFound("Country not found")
	case errors.Is(err, syncpkg.ErrCircuitOpen):
		rw.ServiceUnavailable("Upstream temporarily unavailable")
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Request canceled by client")
		rw.Error(499, "CLIENT_CLOSED_REQUEST", "Request canceled")
	default:
		rw.ExternalServiceError(upstreamName, err)
	}
}
