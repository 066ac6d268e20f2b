// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package database

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/toolrec/internal/logging"
	"github.com/tomtom215/toolrec/internal/metrics"
	"github.com/tomtom215/toolrec/internal/recommend"
)

// BreakerSettings configures the circuit breaker around snapshot loads.
type BreakerSettings struct {
	Name string

	// ConsecutiveFailures trips the breaker. Values below 1 are treated as 1.
	ConsecutiveFailures int

	// Timeout is how long the breaker stays open before a half-open probe.
	Timeout time.Duration

	// Interval resets failure counts while closed. Zero never resets.
	Interval time.Duration
}

// ResilientSource wraps a snapshot source with a circuit breaker so a
// failing store is not hammered by the refresh loop. While open, loads fail
// fast with gobreaker.ErrOpenState.
type ResilientSource struct {
	source recommend.SnapshotSource
	cb     *gobreaker.CircuitBreaker[*recommend.Snapshot]
	name   string
}

// NewResilientSource creates a breaker-protected source.
func NewResilientSource(source recommend.SnapshotSource, settings BreakerSettings) *ResilientSource {
	name := settings.Name
	if name == "" {
		name = "snapshot-store"
	}
	threshold := settings.ConsecutiveFailures
	if threshold < 1 {
		threshold = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*recommend.Snapshot](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= uint32(threshold)
			if trip {
				logging.Warn().Str("breaker", name).Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := from.String(), to.String()
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &ResilientSource{source: source, cb: cb, name: name}
}

// LoadSnapshot loads through the breaker.
func (rs *ResilientSource) LoadSnapshot(ctx context.Context) (*recommend.Snapshot, error) {
	snap, err := rs.cb.Execute(func() (*recommend.Snapshot, error) {
		return rs.source.LoadSnapshot(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(rs.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(rs.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(rs.name).Set(float64(rs.cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(rs.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(rs.name).Set(0)
	return snap, nil
}

// State reports the breaker state.
func (rs *ResilientSource) State() gobreaker.State {
	return rs.cb.State()
}

// stateToFloat converts circuit breaker state to the gauge value.
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
