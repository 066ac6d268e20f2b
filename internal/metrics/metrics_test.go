// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
	}{
		{"successful select", "SELECT", "products", nil},
		{"failed select", "SELECT", "interactions", errors.New("connection refused")},
		{"long error", "INSERT", "products", errors.New(strings.Repeat("x", 120))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, tt.table, 3*time.Millisecond, tt.err)
		})
	}

	longLabel := strings.Repeat("x", 50)
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("INSERT", "products", longLabel)); got < 1 {
		t.Errorf("truncated error label count = %f, want >= 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/recommend", "200"))
	RecordAPIRequest("GET", "/api/recommend", "200", 2*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/recommend", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %f, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %f, want %f", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %f, want %f", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	okBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues("content", "ok"))
	nfBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues("content", "not_found"))

	RecordRecommendation("content", "ok", 5, time.Millisecond)
	RecordRecommendation("content", "ok", 5, 0)
	RecordRecommendation("content", "not_found", 0, time.Millisecond)

	if d := testutil.ToFloat64(RecommendationRequests.WithLabelValues("content", "ok")) - okBefore; d != 2 {
		t.Errorf("ok delta = %f, want 2", d)
	}
	if d := testutil.ToFloat64(RecommendationRequests.WithLabelValues("content", "not_found")) - nfBefore; d != 1 {
		t.Errorf("not_found delta = %f, want 1", d)
	}
}

func TestRecordEngineBuild(t *testing.T) {
	RecordEngineBuild(EngineSize{Products: 42, Interactions: 300, Users: 12}, 50*time.Millisecond, nil)
	if got := testutil.ToFloat64(EngineProducts); got != 42 {
		t.Errorf("engine_products_loaded = %f, want 42", got)
	}

	failBefore := testutil.ToFloat64(EngineBuildsTotal.WithLabelValues("failure"))
	RecordEngineBuild(EngineSize{}, time.Millisecond, errors.New("load failed"))
	if d := testutil.ToFloat64(EngineBuildsTotal.WithLabelValues("failure")) - failBefore; d != 1 {
		t.Errorf("failure delta = %f, want 1", d)
	}

	// A failed build leaves the gauges at the last good values.
	m := &dto.Metric{}
	if err := EngineUsers.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetGauge().GetValue() != 12 {
		t.Errorf("engine_users = %f, want 12", m.GetGauge().GetValue())
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("recommendations"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("recommendations"))

	RecordCacheLookup("recommendations", true)
	RecordCacheLookup("recommendations", false)
	RecordCacheLookup("recommendations", false)

	if d := testutil.ToFloat64(CacheHits.WithLabelValues("recommendations")) - hits; d != 1 {
		t.Errorf("hits delta = %f, want 1", d)
	}
	if d := testutil.ToFloat64(CacheMisses.WithLabelValues("recommendations")) - misses; d != 2 {
		t.Errorf("misses delta = %f, want 2", d)
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "snapshot_source"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %f, want 2", got)
	}
}

func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
