// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService is a suture.Service whose failures can be scripted.
type mockService struct {
	name       string
	startCount atomic.Int32
	stopCount  atomic.Int32
	failures   atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

// failTimes makes the next n Serve calls return an error immediately.
func (m *mockService) failTimes(n int32) {
	m.failures.Store(n)
}

func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	defer m.stopCount.Add(1)

	if m.failures.Add(-1) >= 0 {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
