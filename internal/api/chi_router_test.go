// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/toolrec/internal/config"
)

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	mc := DefaultChiMiddlewareConfig()
	mc.RateLimitRequests = 1
	mc.RateLimitWindow = time.Hour
	srv := NewRouter(NewHandler(newTestHolder(t, nil)), NewChiMiddleware(mc), 0).SetupChi()

	if rec := do(t, srv, http.MethodGet, "/api/health"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}
	rec := do(t, srv, http.MethodGet, "/api/health")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if got := decodeError(t, rec); got != "Too many requests" {
		t.Errorf("error = %q", got)
	}

	// /metrics sits outside the limited group.
	if rec := do(t, srv, http.MethodGet, "/metrics"); rec.Code != http.StatusOK {
		t.Errorf("/metrics status = %d, want 200", rec.Code)
	}
}

func TestRouter_CORSAndRequestID(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, NewHandler(newTestHolder(t, nil)))

	req := httptest.NewRequest(http.MethodOptions, "/api/recommend", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	rec = do(t, srv, http.MethodGet, "/api/health")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, NewHandler(newTestHolder(t, nil)))

	rec := do(t, srv, http.MethodGet, "/api/nope")
	if rec.Code != http.StatusNotFound || decodeError(t, rec) != "Not found" {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestChiMiddlewareConfigFromServer(t *testing.T) {
	t.Parallel()

	mc := ChiMiddlewareConfigFromServer(&config.ServerConfig{
		CORSOrigins:       []string{"https://a.example.com"},
		RateLimitReqs:     7,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
	})
	if len(mc.CORSAllowedOrigins) != 1 || mc.RateLimitRequests != 7 || !mc.RateLimitDisabled {
		t.Errorf("config = %+v", mc)
	}

	mc = ChiMiddlewareConfigFromServer(&config.ServerConfig{RateLimitReqs: 1, RateLimitWindow: time.Second})
	if strings.Join(mc.CORSAllowedOrigins, ",") != "*" {
		t.Errorf("empty origins should keep the wildcard default, got %v", mc.CORSAllowedOrigins)
	}
}
