// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/toolrec/internal/recommend"
)

var errStoreDown = errors.New("store down")

type flakySource struct {
	calls   atomic.Int32
	failing atomic.Bool
}

func (f *flakySource) LoadSnapshot(context.Context) (*recommend.Snapshot, error) {
	f.calls.Add(1)
	if f.failing.Load() {
		return nil, errStoreDown
	}
	return &recommend.Snapshot{Products: []recommend.Product{{ProductID: 1, Price: 1}}}, nil
}

func TestResilientSource_TripsAndRecovers(t *testing.T) {
	t.Parallel()

	src := &flakySource{}
	src.failing.Store(true)
	rs := NewResilientSource(src, BreakerSettings{
		Name:                "test-trip",
		ConsecutiveFailures: 2,
		Timeout:             50 * time.Millisecond,
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := rs.LoadSnapshot(ctx); !errors.Is(err, errStoreDown) {
			t.Fatalf("load %d error = %v, want errStoreDown", i, err)
		}
	}
	if rs.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", rs.State())
	}

	if _, err := rs.LoadSnapshot(ctx); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("open breaker error = %v, want ErrOpenState", err)
	}
	if got := src.calls.Load(); got != 2 {
		t.Errorf("source called %d times, want 2 (open breaker must not call through)", got)
	}

	src.failing.Store(false)
	time.Sleep(80 * time.Millisecond)

	snap, err := rs.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("half-open probe error = %v", err)
	}
	if len(snap.Products) != 1 {
		t.Errorf("snapshot products = %d, want 1", len(snap.Products))
	}
	if rs.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed after successful probe", rs.State())
	}
}

func TestResilientSource_Defaults(t *testing.T) {
	t.Parallel()

	src := &flakySource{}
	src.failing.Store(true)
	rs := NewResilientSource(src, BreakerSettings{Timeout: time.Minute})
	if rs.name != "snapshot-store" {
		t.Errorf("name = %q, want snapshot-store", rs.name)
	}

	_, _ = rs.LoadSnapshot(context.Background())
	if rs.State() != gobreaker.StateOpen {
		t.Errorf("threshold below 1 should trip on the first failure, state = %v", rs.State())
	}
}

func TestStateToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		want  float64
	}{
		{gobreaker.StateClosed, 0},
		{gobreaker.StateHalfOpen, 1},
		{gobreaker.StateOpen, 2},
		{gobreaker.State(99), -1},
	}
	for _, tt := range tests {
		if got := stateToFloat(tt.state); got != tt.want {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
