// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

/*
manager.go - Fetch orchestration

The Manager owns every call to the DataSource and turns each result into a
dashboard event:

  - Startup: global totals, the country list and the historical series are
    fetched concurrently. Each fetch dispatches its own event when it
    completes; there is no ordering between them.
  - Selection: SelectCountry fetches one record (/all for worldwide) and
    dispatches CountrySelected, which recentres the map. The most recent
    selection wins; a slower, older response is discarded.
  - Refresh: every RefreshInterval the startup fetches run again and a
    settled country selection is re-fetched without taking a selection
    number, so it never supersedes a user selection. A failure is recorded
    as FetchFailed and not retried before the next tick.

Thread Safety:
  - mu: protects running, lastSync, stopChan and cancel
  - selMu: protects the selection counters and serializes the dispatch of
    selection results
  - wg: tracks the initial load and the refresh loop for Stop
*/

//nolint:staticcheck // File documentation, not package doc
package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/covidtracker/internal/config"
	"github.com/tomtom215/covidtracker/internal/dashboard"
	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/models"
	"github.com/tomtom215/covidtracker/internal/stats"
)

// ErrInvalidCasesType is returned by SetCasesType for an unknown type.
var ErrInvalidCasesType = errors.New("invalid cases type")

// StateStore is the part of dashboard.Store the manager needs.
type StateStore interface {
	Dispatch(ev dashboard.Event) dashboard.State
	Snapshot() dashboard.State
}

// Manager coordinates upstream fetches and state updates.
type Manager struct {
	source DataSource
	store  StateStore
	cfg    *config.SourceConfig
	now    func() time.Time

	mu       sync.RWMutex
	running  bool
	lastSync time.Time
	stopChan chan struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	// selSeq numbers user selections; selSettled is the last one whose
	// fetch completed while it was still the latest.
	selMu      sync.Mutex
	selSeq     uint64
	selSettled uint64
}

// NewManager creates a manager. Nothing is fetched until Start or LoadAll.
func NewManager(source DataSource, store StateStore, cfg *config.SourceConfig) *Manager {
	return &Manager{
		source: source,
		store:  store,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start issues the startup fetches in the background and, when
// RefreshInterval is positive, starts the refresh loop.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is already running")
	}

	logging.Info().Msg("Starting sync manager...")

	runCtx, cancel := context.WithCancel(ctx)
	m.running = true
	m.cancel = cancel
	m.stopChan = make(chan struct{})
	stopChan := m.stopChan
	m.mu.Unlock()

	// Add before starting so Stop never waits on a partial count.
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.LoadAll(runCtx); err != nil {
			logging.Warn().Err(err).Msg("Initial load incomplete (will refresh on next tick)")
		}
	}()

	if m.cfg.RefreshInterval > 0 {
		m.wg.Add(1)
		go m.refreshLoop(runCtx, stopChan)
		logging.Info().Dur("interval", m.cfg.RefreshInterval).Msg("Periodic refresh enabled")
	}

	return nil
}

// Stop cancels in-flight fetches and waits for background work to finish.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is not running")
	}
	m.running = false
	close(m.stopChan)
	m.cancel()
	m.mu.Unlock()

	logging.Info().Msg("Stopping sync manager...")
	m.wg.Wait()
	logging.Info().Msg("Sync manager stopped")

	return nil
}

// IsRunning reports whether Start has been called without a matching Stop.
func (m *Manager) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// LastSyncTime returns when a full load last completed without errors.
func (m *Manager) LastSyncTime() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSync
}

func (m *Manager) refreshLoop(ctx context.Context, stopChan <-chan struct{}) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopChan:
			return
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				logging.Warn().Err(err).Msg("Refresh incomplete")
			}
		}
	}
}

// LoadAll runs the global, country list and historical fetches concurrently
// and waits for all three. Every fetch dispatches its own event; the
// returned error joins the failures.
func (m *Manager) LoadAll(ctx context.Context) error {
	loaders := []func(context.Context) error{
		m.loadGlobal,
		m.loadCountries,
		m.loadHistorical,
	}

	errs := make([]error, len(loaders))
	var wg sync.WaitGroup
	for i, load := range loaders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = load(ctx)
		}()
	}
	wg.Wait()

	err := errors.Join(errs...)
	if err == nil {
		m.mu.Lock()
		m.lastSync = m.now()
		m.mu.Unlock()
	}
	return err
}

// Refresh reloads everything LoadAll does and re-fetches the current
// country selection. A worldwide selection follows GlobalLoaded, so it is
// not fetched twice.
func (m *Manager) Refresh(ctx context.Context) error {
	err := m.LoadAll(ctx)
	if selErr := m.refreshSelection(ctx); selErr != nil {
		err = errors.Join(err, selErr)
	}
	return err
}

// refreshSelection re-fetches the settled selection. It never takes a
// selection sequence number, so it cannot supersede a user selection: it
// is skipped while one is in flight and its result is dropped if one
// starts before the fetch returns.
func (m *Manager) refreshSelection(ctx context.Context) error {
	m.selMu.Lock()
	seq, settled := m.selSeq, m.selSettled
	code := m.store.Snapshot().SelectedCode
	m.selMu.Unlock()

	if seq != settled {
		logging.Debug().Msg("Selection in flight, skipping selection refresh")
		return nil
	}
	if stats.IsWorldwide(code) {
		return nil
	}

	stat, err := m.source.GetCountry(ctx, code)

	m.selMu.Lock()
	defer m.selMu.Unlock()
	if m.selSeq != seq {
		logging.Debug().Str("country", code).Msg("Discarding refresh of superseded selection")
		return nil
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return m.fail(dashboard.SliceSelection, err)
	}
	m.store.Dispatch(dashboard.CountrySelected{Code: code, Stat: *stat, At: m.now()})
	return nil
}

func (m *Manager) loadGlobal(ctx context.Context) error {
	g, err := m.source.GetGlobal(ctx)
	if err != nil {
		return m.fail(dashboard.SliceGlobal, err)
	}
	m.store.Dispatch(dashboard.GlobalLoaded{Global: *g, At: m.now()})
	return nil
}

func (m *Manager) loadCountries(ctx context.Context) error {
	countries, err := m.source.GetCountries(ctx)
	if err != nil {
		return m.fail(dashboard.SliceCountries, err)
	}
	m.store.Dispatch(dashboard.CountriesLoaded{Countries: countries, At: m.now()})
	return nil
}

func (m *Manager) loadHistorical(ctx context.Context) error {
	tl, err := m.source.GetHistoricalAll(ctx, m.cfg.HistoricalDays)
	if err != nil {
		return m.fail(dashboard.SliceHistorical, err)
	}
	m.store.Dispatch(dashboard.HistoricalLoaded{Timeline: *tl, At: m.now()})
	return nil
}

// fail records a fetch failure in the state and returns the wrapped error.
// A canceled context is not a fetch failure and is not recorded.
func (m *Manager) fail(slice dashboard.Slice, err error) error {
	err = fmt.Errorf("load %s: %w", slice, err)
	if errors.Is(err, context.Canceled) {
		return err
	}
	logging.Warn().Err(err).Str("slice", string(slice)).Msg("Fetch failed")
	m.store.Dispatch(dashboard.FetchFailed{Slice: slice, Err: err.Error(), At: m.now()})
	return err
}

// SelectCountry fetches the record for code and makes it the selection.
// code is "worldwide" (or empty) for the global aggregate, otherwise an
// iso2, iso3 or country name.
//
// When a newer selection starts before this one's fetch returns, this
// result is dropped and the current state is returned unchanged.
func (m *Manager) SelectCountry(ctx context.Context, code string) (dashboard.State, error) {
	code = strings.TrimSpace(code)
	seq := m.nextSelection()

	stat, err := m.fetchSelection(ctx, code)

	// The latest-selection check and the dispatch happen under one lock so a
	// newer selection cannot land in between.
	m.selMu.Lock()
	defer m.selMu.Unlock()
	if seq != m.selSeq {
		logging.Debug().Str("country", code).Msg("Discarding superseded selection")
		return m.store.Snapshot(), err
	}
	m.selSettled = seq
	if err != nil {
		if errors.Is(err, ErrCountryNotFound) || errors.Is(err, context.Canceled) {
			return m.store.Snapshot(), err
		}
		return m.store.Snapshot(), m.fail(dashboard.SliceSelection, err)
	}

	return m.store.Dispatch(dashboard.CountrySelected{Code: code, Stat: *stat, At: m.now()}), nil
}

func (m *Manager) fetchSelection(ctx context.Context, code string) (*models.CountryStat, error) {
	if stats.IsWorldwide(code) {
		g, err := m.source.GetGlobal(ctx)
		if err != nil {
			return nil, err
		}
		stat := g.CountryStat()
		return &stat, nil
	}
	return m.source.GetCountry(ctx, code)
}

func (m *Manager) nextSelection() uint64 {
	m.selMu.Lock()
	defer m.selMu.Unlock()
	m.selSeq++
	return m.selSeq
}

// SetCasesType switches the counter that drives the map and chart.
func (m *Manager) SetCasesType(casesType models.CasesType) (dashboard.State, error) {
	if !casesType.Valid() {
		return m.store.Snapshot(), fmt.Errorf("%w: %q", ErrInvalidCasesType, casesType)
	}
	return m.store.Dispatch(dashboard.CasesTypeChanged{CasesType: casesType, At: m.now()}), nil
}

// Snapshot returns the current dashboard state.
func (m *Manager) Snapshot() dashboard.State {
	return m.store.Snapshot()
}

// Ping checks the upstream.
func (m *Manager) Ping(ctx context.Context) error {
	return m.source.Ping(ctx)
}

// GetCountry fetches one country without changing the selection.
func (m *Manager) GetCountry(ctx context.Context, code string) (*models.CountryStat, error) {
	return m.source.GetCountry(ctx, code)
}
