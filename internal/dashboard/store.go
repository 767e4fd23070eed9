// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package dashboard

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/covidtracker/internal/logging"
	"github.com/tomtom215/covidtracker/internal/metrics"
)

// StateTopic is the topic every rendered state change is published on.
const StateTopic = "dashboard.state"

// Message metadata keys set on every published state.
const (
	MetadataVersion = "version"
	MetadataEvent   = "event"
)

// Store owns the current State. Dispatch is the only way to change it.
//
// After each applied event the rendered View is published on StateTopic.
// Publishing is asynchronous, so subscribers must compare the version
// metadata and drop anything older than what they already delivered.
type Store struct {
	mu        sync.RWMutex
	state     State
	publisher message.Publisher
}

// NewStore creates a store holding initial. publisher may be nil, in which
// case changes are applied but not broadcast.
func NewStore(initial State, publisher message.Publisher) *Store {
	return &Store{state: initial, publisher: publisher}
}

// Dispatch reduces ev into the current state and returns the result.
func (s *Store) Dispatch(ev Event) State {
	s.mu.Lock()
	prev := s.state.Version
	next := Reduce(s.state, ev)
	s.state = next
	s.mu.Unlock()

	if next.Version == prev {
		logging.Debug().Str("event", string(ev.Type())).Msg("Dashboard event ignored")
		return next
	}

	metrics.RecordDashboardEvent(string(ev.Type()), next.Version, len(next.Countries))
	if err := s.publish(next, ev.Type()); err != nil {
		metrics.DashboardPublishErrors.Inc()
		logging.Warn().Err(err).
			Uint64("version", next.Version).
			Str("event", string(ev.Type())).
			Msg("Failed to publish dashboard state")
	}
	return next
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) publish(st State, eventType EventType) error {
	if s.publisher == nil {
		return nil
	}
	payload, err := json.Marshal(Render(st))
	if err != nil {
		return fmt.Errorf("marshal view: %w", err)
	}
	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set(MetadataVersion, strconv.FormatUint(st.Version, 10))
	msg.Metadata.Set(MetadataEvent, string(eventType))
	if err := s.publisher.Publish(StateTopic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", StateTopic, err)
	}
	return nil
}

// MessageVersion reads the state version from a published message. It
// returns 0 when the metadata is missing or malformed.
func MessageVersion(msg *message.Message) uint64 {
	v, err := strconv.ParseUint(msg.Metadata.Get(MetadataVersion), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
