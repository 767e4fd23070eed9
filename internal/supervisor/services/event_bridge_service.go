// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/covidtracker/internal/dashboard"
	"github.com/tomtom215/covidtracker/internal/logging"
)

// ErrSubscriptionClosed is returned when the subscriber closes its channel
// while the service is still running.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Broadcaster is satisfied by *websocket.Hub.
type Broadcaster interface {
	BroadcastDashboardUpdate(view []byte)
}

// StateSource is satisfied by *dashboard.Store.
type StateSource interface {
	Snapshot() dashboard.State
}

// EventBridgeService forwards rendered dashboard states from the watermill
// bus to the WebSocket hub.
//
// Publishing is asynchronous, so messages can arrive out of order. Each
// message carries the state version; anything not newer than the last
// forwarded version is acked and dropped, as is a message without a
// version. The last version survives restarts of the service.
//
// The bus drops states published while nobody is subscribed, so after every
// (re)subscribe the current state from states is broadcast if it is newer
// than the last forwarded version.
type EventBridgeService struct {
	subscriber  message.Subscriber
	topic       string
	hub         Broadcaster
	states      StateSource
	lastVersion atomic.Uint64
	name        string
}

// NewEventBridgeService creates the service for dashboard.StateTopic.
// states may be nil, in which case nothing is replayed on subscribe.
func NewEventBridgeService(subscriber message.Subscriber, hub Broadcaster, states StateSource) *EventBridgeService {
	return &EventBridgeService{
		subscriber: subscriber,
		topic:      dashboard.StateTopic,
		hub:        hub,
		states:     states,
		name:       "event-bridge",
	}
}

// Serve implements suture.Service.
func (e *EventBridgeService) Serve(ctx context.Context) error {
	messages, err := e.subscriber.Subscribe(ctx, e.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", e.topic, err)
	}
	e.replay()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrSubscriptionClosed
			}
			e.forward(msg)
			msg.Ack()
		}
	}
}

func (e *EventBridgeService) forward(msg *message.Message) {
	version := dashboard.MessageVersion(msg)
	last := e.lastVersion.Load()
	if version <= last {
		logging.Debug().
			Uint64("version", version).
			Uint64("last_version", last).
			Msg("Dropping stale dashboard update")
		return
	}
	e.lastVersion.Store(version)
	e.hub.BroadcastDashboardUpdate(msg.Payload)
}

// replay broadcasts the current state when it is newer than the last
// forwarded version.
func (e *EventBridgeService) replay() {
	if e.states == nil {
		return
	}
	st := e.states.Snapshot()
	if st.Version <= e.lastVersion.Load() {
		return
	}
	payload, err := json.Marshal(dashboard.Render(st))
	if err != nil {
		logging.Warn().Err(err).Uint64("version", st.Version).Msg("Failed to render dashboard state for replay")
		return
	}
	e.lastVersion.Store(st.Version)
	e.hub.BroadcastDashboardUpdate(payload)
	logging.Debug().Uint64("version", st.Version).Msg("Replayed current dashboard state")
}

// LastVersion returns the version of the last forwarded update.
func (e *EventBridgeService) LastVersion() uint64 {
	return e.lastVersion.Load()
}

// String names the service in suture logs.
func (e *EventBridgeService) String() string {
	return e.name
}
