// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/metrics"
	"github.com/tomtom215/covidtracker/internal/models"
)

// ErrCircuitOpen is returned when the breaker rejects a call without trying
// the upstream. The gobreaker error stays in the chain.
var ErrCircuitOpen = errors.New("upstream circuit open")

// CircuitBreakerConfig tunes the breaker.
type CircuitBreakerConfig struct {
	Name string

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32

	// Interval resets the closed-state counts. 0 never resets.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// The breaker opens after ConsecutiveFailures failures in a row, or when
	// at least MinRequests have been made and the failure ratio reaches
	// FailureRatio.
	ConsecutiveFailures uint32
	MinRequests         uint32
	FailureRatio        float64
}

// DefaultCircuitBreakerConfig returns the production settings.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:                "covid-api",
		MaxRequests:         3,
		Interval:            time.Minute,
		Timeout:             2 * time.Minute,
		ConsecutiveFailures: 5,
		MinRequests:         10,
		FailureRatio:        0.6,
	}
}

// CircuitBreakerClient wraps a DataSource with a circuit breaker so a dead
// upstream fails fast instead of stalling every refresh and selection.
//
// A country that does not exist and a caller that gave up are not upstream
// faults; neither counts toward tripping.
type CircuitBreakerClient struct {
	client DataSource
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient wraps client with a breaker configured by cfg.
func NewCircuitBreakerClient(client DataSource, cfg CircuitBreakerConfig) *CircuitBreakerClient {
	if cfg.Name == "" {
		cfg.Name = DefaultCircuitBreakerConfig().Name
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if cfg.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= cfg.ConsecutiveFailures {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			if counts.Requests < cfg.MinRequests || counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= cfg.FailureRatio {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},

		IsSuccessful: func(err error) bool {
			return !isUpstreamFault(err)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cfg.Name}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// execute runs fn through the breaker and records the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", cbc.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		if !isUpstreamFault(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
			return nil, err
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// isUpstreamFault reports whether err should count against the upstream.
// Unknown countries and callers that gave up do not.
func isUpstreamFault(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrCountryNotFound) &&
		!errors.Is(err, context.Canceled)
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// GetGlobal fetches the worldwide aggregate through the breaker.
func (cbc *CircuitBreakerClient) GetGlobal(ctx context.Context) (*models.GlobalStat, error) {
	return castResult[models.GlobalStat](cbc.execute(func() (any, error) {
		return cbc.client.GetGlobal(ctx)
	}))
}

// GetCountries fetches the country list through the breaker.
func (cbc *CircuitBreakerClient) GetCountries(ctx context.Context) ([]models.CountryStat, error) {
	result, err := castResult[[]models.CountryStat](cbc.execute(func() (any, error) {
		countries, err := cbc.client.GetCountries(ctx)
		if err != nil {
			return nil, err
		}
		return &countries, nil
	}))
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// GetCountry fetches one country through the breaker.
func (cbc *CircuitBreakerClient) GetCountry(ctx context.Context, code string) (*models.CountryStat, error) {
	return castResult[models.CountryStat](cbc.execute(func() (any, error) {
		return cbc.client.GetCountry(ctx, code)
	}))
}

// GetHistoricalAll fetches the worldwide timeline through the breaker.
func (cbc *CircuitBreakerClient) GetHistoricalAll(ctx context.Context, days int) (*models.HistoricalTimeline, error) {
	return castResult[models.HistoricalTimeline](cbc.execute(func() (any, error) {
		return cbc.client.GetHistoricalAll(ctx, days)
	}))
}

// Ping checks the upstream through the breaker.
func (cbc *CircuitBreakerClient) Ping(ctx context.Context) error {
	_, err := cbc.execute(func() (any, error) {
		return nil, cbc.client.Ping(ctx)
	})
	return err
}
