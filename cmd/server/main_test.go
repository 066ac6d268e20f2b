// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/toolrec/internal/config"
	"github.com/tomtom215/toolrec/internal/metrics"
	"github.com/tomtom215/toolrec/internal/recommend"
)

func TestEngineConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Recommend: config.RecommendConfig{TopN: 7, Neighbors: 4, BudgetTopK: 3}}
	got := engineConfig(cfg)
	want := recommend.Config{TopN: 7, Neighbors: 4, BudgetTopK: 3}
	if *got != want {
		t.Errorf("engineConfig() = %+v, want %+v", *got, want)
	}
}

func TestObserveBuild(t *testing.T) {
	before := testutil.ToFloat64(metrics.EngineBuildsTotal.WithLabelValues("failure"))
	observeBuild(recommend.Stats{}, time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(metrics.EngineBuildsTotal.WithLabelValues("failure")); got != before+1 {
		t.Errorf("failure builds = %v, want %v", got, before+1)
	}

	observeBuild(recommend.Stats{ProductsLoaded: 14, InteractionsLoaded: 24, Users: 6}, time.Millisecond, nil)
	if got := testutil.ToFloat64(metrics.EngineProducts); got != 14 {
		t.Errorf("products gauge = %v, want 14", got)
	}
}

func TestUptimeService(t *testing.T) {
	svc := newUptimeService(time.Now().Add(-time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 60 {
		t.Errorf("uptime = %v, want >= 60", got)
	}
}
