// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/dashboard"
	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
	syncpkg "github.com/tomtom215/covidtracker/internal/sync"
)

// fakeService backs the handlers with a real store and canned upstream answers.
type fakeService struct {
	store *dashboard.Store

	mu        sync.Mutex
	countries map[string]models.CountryStat
	fetchErr  error
	pingErr   error
	lastSync  time.Time
	fetched   []string
}

func (f *fakeService) Snapshot() dashboard.State { return f.store.Snapshot() }

func (f *fakeService) SelectCountry(ctx context.Context, code string) (dashboard.State, error) {
	if stats.IsWorldwide(code) {
		st := f.store.Snapshot()
		var stat models.CountryStat
		if st.Global != nil {
			stat = st.Global.CountryStat()
		}
		return f.store.Dispatch(dashboard.CountrySelected{Code: code, Stat: stat, At: time.Now()}), nil
	}
	stat, err := f.GetCountry(ctx, code)
	if err != nil {
		return f.store.Snapshot(), err
	}
	return f.store.Dispatch(dashboard.CountrySelected{Code: code, Stat: *stat, At: time.Now()}), nil
}

func (f *fakeService) SetCasesType(ct models.CasesType) (dashboard.State, error) {
	if !ct.Valid() {
		return f.store.Snapshot(), syncpkg.ErrInvalidCasesType
	}
	return f.store.Dispatch(dashboard.CasesTypeChanged{CasesType: ct, At: time.Now()}), nil
}

func (f *fakeService) GetCountry(_ context.Context, code string) (*models.CountryStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, code)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	stat, ok := f.countries[strings.ToUpper(code)]
	if !ok {
		return nil, syncpkg.ErrCountryNotFound
	}
	return &stat, nil
}

func (f *fakeService) Ping(context.Context) error { return f.pingErr }

func (f *fakeService) LastSyncTime() time.Time { return f.lastSync }

func country(name, iso2 string, lat, lng float64, cases, deaths int64) models.CountryStat {
	return models.CountryStat{
		Country:     name,
		CountryInfo: models.CountryInfo{ISO2: iso2, Lat: lat, Long: lng},
		Counts: models.Counts{
			Cases:      models.Int64(cases),
			TodayCases: models.Int64(cases / 1000),
			Deaths:     models.Int64(deaths),
		},
	}
}

var fixtureCountries = []models.CountryStat{
	country("India", "IN", 20, 77, 44_000_000, 530_000),
	country("USA", "US", 38, -97, 100_000_000, 1_100_000),
	country("Brazil", "BR", -10, -55, 37_000_000, 700_000),
}

// newFakeService returns a service whose store has not loaded anything.
func newFakeService() *fakeService {
	countries := make(map[string]models.CountryStat, len(fixtureCountries))
	for _, c := range fixtureCountries {
		countries[c.CountryInfo.ISO2] = c
	}
	return &fakeService{
		store:     dashboard.NewStore(dashboard.InitialState(dashboard.DefaultDefaults()), nil),
		countries: countries,
	}
}

// newLoadedService returns a service whose store has every startup slice.
func newLoadedService() *fakeService {
	f := newFakeService()
	f.store.Dispatch(dashboard.GlobalLoaded{Global: models.GlobalStat{
		Counts: models.Counts{
			Cases:      models.Int64(700_000_000),
			TodayCases: models.Int64(12_345),
			Deaths:     models.Int64(7_000_000),
			Recovered:  models.Int64(670_000_000),
		},
		AffectedCountries: 231,
	}})
	f.store.Dispatch(dashboard.CountriesLoaded{Countries: fixtureCountries})
	f.store.Dispatch(dashboard.HistoricalLoaded{Timeline: models.HistoricalTimeline{
		Cases:     map[string]int64{"1/1/23": 100, "1/2/23": 150, "1/3/23": 175},
		Deaths:    map[string]int64{"1/1/23": 10, "1/2/23": 11, "1/3/23": 13},
		Recovered: map[string]int64{"1/1/23": 50, "1/2/23": 60, "1/3/23": 90},
	}})
	f.lastSync = time.Now()
	return f
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

func newTestRouter(svc DashboardService) http.Handler {
	cfg := testConfig()
	handler := NewHandler(svc, cfg, nil)
	return NewRouter(handler, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security))).SetupChi()
}

// doRequest runs a request through the full router.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the envelope and its data into dst.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) APIResponse {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *APIError       `json:"error"`
		Meta    *APIMeta        `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("Failed to unmarshal data: %v", err)
		}
	}
	return APIResponse{Success: env.Success, Error: env.Error, Meta: env.Meta}
}
