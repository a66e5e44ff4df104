// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Pinger is satisfied by every storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService probes the store on an interval. Each probe updates the
// store_up gauge and the uptime gauge; state changes are logged once.
type StoreMonitorService struct {
	store    Pinger
	backend  string
	interval time.Duration
	timeout  time.Duration
	started  time.Time

	healthy atomic.Bool
}

// NewStoreMonitorService creates a monitor. Non-positive intervals become 30s.
func NewStoreMonitorService(store Pinger, backend string, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	m := &StoreMonitorService{
		store:    store,
		backend:  backend,
		interval: interval,
		timeout:  timeout,
		started:  time.Now(),
	}
	m.healthy.Store(true)
	return m
}

// Serve implements suture.Service. It probes once immediately, then on every
// tick until ctx is canceled.
func (m *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *StoreMonitorService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.store.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.SetStoreUp(m.backend, up)
	metrics.SetUptime(time.Since(m.started))

	was := m.healthy.Swap(up)
	switch {
	case !up && was:
		logging.Warn().Err(err).Str("backend", m.backend).Msg("Store probe failed")
	case up && !was:
		logging.Info().Str("backend", m.backend).Msg("Store reachable again")
	}
}

// Healthy reports the outcome of the last probe.
func (m *StoreMonitorService) Healthy() bool {
	return m.healthy.Load()
}

// String implements fmt.Stringer for suture's log events.
func (m *StoreMonitorService) String() string {
	return "store-monitor(" + m.backend + ")"
}
