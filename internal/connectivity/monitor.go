// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity implements the Connectivity Monitor: a boolean
// "is the Remote Authority reachable" signal with transition events.
//
// The monitor only reports transitions. It never cancels work already in
// flight; reacting to a transition (for example draining the operation queue
// when the client comes back online) is up to the subscribers.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/state"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 5 * time.Second

// Prober checks reachability of the Remote Authority.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor tracks whether the Remote Authority is reachable.
type Monitor struct {
	prober  Prober
	timeout time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	online bool
	probed bool

	transitions state.Publisher[bool]
}

// NewMonitor returns a monitor that starts offline until the first probe
// or explicit report.
func NewMonitor(prober Prober, logger *logger.Logger) *Monitor {
	return &Monitor{
		prober:  prober,
		timeout: DefaultProbeTimeout,
		logger:  logger,
	}
}

// IsOnline returns the last known reachability.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.online
}

// Subscribe registers fn for every transition. fn receives the new state.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	return m.transitions.Subscribe(fn)
}

// SetOnline records the reachability and notifies subscribers when it
// changed. The first report always notifies so subscribers learn the
// initial state.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	changed := !m.probed || m.online != online
	m.online = online
	m.probed = true
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info().
		Str("func", "Monitor.SetOnline").
		Bool("online", online).
		Msg("connectivity changed")
	m.transitions.Publish(online)
}

// Probe pings the Remote Authority, records the outcome and returns it.
func (m *Monitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.prober.Ping(probeCtx)
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "Monitor.Probe").Msg("remote authority unreachable")
	}

	online := err == nil
	m.SetOnline(online)
	return online
}
