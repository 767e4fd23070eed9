// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/metrics"
	"github.com/tomtom215/covidtracker/internal/models"
)

// Upstream paths, relative to the configured base URL.
const (
	pathGlobal     = "/v3/covid-19/all"
	pathCountries  = "/v3/covid-19/countries"
	pathHistorical = "/v3/covid-19/historical/all"
)

// maxErrorBodySize limits how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// ErrCountryNotFound is returned when the upstream has no record for a code.
var ErrCountryNotFound = errors.New("country not found")

// StatusError is returned for any non-200 upstream response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// DataSource is the read-only view of the statistics API.
//
// Client implements it against disease.sh; CircuitBreakerClient decorates
// any DataSource with a breaker; tests supply mocks.
type DataSource interface {
	GetGlobal(ctx context.Context) (*models.GlobalStat, error)
	GetCountries(ctx context.Context) ([]models.CountryStat, error)
	GetCountry(ctx context.Context, code string) (*models.CountryStat, error)
	GetHistoricalAll(ctx context.Context, days int) (*models.HistoricalTimeline, error)
	Ping(ctx context.Context) error
}

// Client talks to a disease.sh compatible API.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client from the source config. A non-positive rate
// limit disables outbound throttling.
func NewClient(cfg *config.SourceConfig) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// GetGlobal fetches the worldwide aggregate.
func (c *Client) GetGlobal(ctx context.Context) (*models.GlobalStat, error) {
	var out models.GlobalStat
	if err := c.get(ctx, pathGlobal, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCountries fetches every country record in upstream order.
func (c *Client) GetCountries(ctx context.Context) ([]models.CountryStat, error) {
	var out []models.CountryStat
	if err := c.get(ctx, pathCountries, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.CountryStat{}
	}
	return out, nil
}

// GetCountry fetches one country by iso2, iso3 or name.
func (c *Client) GetCountry(ctx context.Context, code string) (*models.CountryStat, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("get country: %w", ErrCountryNotFound)
	}

	var out models.CountryStat
	err := c.get(ctx, pathCountries+"/"+url.PathEscape(code), nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("get country %q: %w", code, ErrCountryNotFound)
		}
		return nil, err
	}
	return &out, nil
}

// GetHistoricalAll fetches the worldwide cumulative series for the last days.
func (c *Client) GetHistoricalAll(ctx context.Context, days int) (*models.HistoricalTimeline, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("lastdays", strconv.Itoa(days))
	}

	var out models.HistoricalTimeline
	if err := c.get(ctx, pathHistorical, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks that the upstream answers the global endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.GetGlobal(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// get issues a rate-limited GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	endpoint := metrics.NormalizeEndpoint(path)

	start := time.Now()
	body, status, err := executeRequest(ctx, c.client, reqURL)
	metrics.RecordUpstreamRequest(endpoint, status, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if status != http.StatusOK {
		return &StatusError{Endpoint: path, StatusCode: status, Body: string(body)}
	}

	if err := decodeResponse(body, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// executeRequest performs a GET. On a 200 the whole body is returned; for
// any other status at most maxErrorBodySize bytes are kept.
func executeRequest(ctx context.Context, client *http.Client, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return readBodyForError(resp.Body), resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// decodeResponse unmarshals body into out. An empty or null body leaves out
// at its zero value.
func decodeResponse(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
