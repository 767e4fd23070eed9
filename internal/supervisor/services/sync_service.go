// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package services

import (
	"context"
	"fmt"
)

// StartStopManager is the lifecycle of sync.Manager.
type StartStopManager interface {
	Start(ctx context.Context) error
	Stop() error
}

// SyncService runs the fetch manager under supervision: Start kicks off the
// three startup fetches and the refresh loop, Stop waits for them.
type SyncService struct {
	manager StartStopManager
	name    string
}

// NewSyncService creates the service.
//
//	manager := sync.NewManager(source, store, &cfg.Source)
//	tree.AddMessagingService(services.NewSyncService(manager))
func NewSyncService(manager StartStopManager) *SyncService {
	return &SyncService{
		manager: manager,
		name:    "sync-manager",
	}
}

// Serve implements suture.Service. A Start failure is returned so suture
// restarts the service with backoff.
func (s *SyncService) Serve(ctx context.Context) error {
	if err := s.manager.Start(ctx); err != nil {
		return fmt.Errorf("sync manager start failed: %w", err)
	}

	<-ctx.Done()

	if err := s.manager.Stop(); err != nil {
		return fmt.Errorf("sync manager stop failed: %w", err)
	}
	return ctx.Err()
}

// String names the service in suture logs.
func (s *SyncService) String() string {
	return s.name
}
