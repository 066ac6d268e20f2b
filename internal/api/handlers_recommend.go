// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/toolrec/internal/logging"
	"github.com/tomtom215/toolrec/internal/metrics"
	"github.com/tomtom215/toolrec/internal/recommend"
)

const resultCacheType = "recommend"

// Recommend handles GET /api/recommend.
//
// Query parameters: type (content, price, cf, personalized, budget; default
// content), product_id, user_id, budget and top_n. Success is a JSON array of
// product rows; failures are {"error": message}.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, msg := parseRecommendRequest(r.URL.Query())
	if msg != "" {
		metrics.RecordRecommendation(metricsType(req.Type), "invalid", 0, time.Since(start))
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	engine, generation, err := h.holder.Current()
	if err != nil {
		metrics.RecordRecommendation(req.Type, "error", 0, time.Since(start))
		respondError(w, http.StatusServiceUnavailable, "Recommendation engine not ready", err)
		return
	}

	key := req.cacheKey(generation)
	if cached, ok := h.cachedResult(key); ok {
		metrics.RecordRecommendation(req.Type, "ok", cached.Rows, 0)
		writeJSON(w, http.StatusOK, cached.Body)
		return
	}

	rows, err := req.execute(engine)
	if err != nil {
		status, outcome, message := classifyError(err)
		metrics.RecordRecommendation(req.Type, outcome, 0, time.Since(start))
		if status == http.StatusInternalServerError {
			respondError(w, status, message, err)
			return
		}
		logging.Ctx(r.Context()).Debug().Str("type", req.Type).Str("reason", sanitizeLogValue(message)).Msg("Recommendation request rejected")
		respondError(w, status, message, nil)
		return
	}

	body, err := json.Marshal(rows)
	if err != nil {
		metrics.RecordRecommendation(req.Type, "error", 0, time.Since(start))
		respondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	h.storeResult(key, CachedResult{Body: body, Rows: len(rows)})

	metrics.RecordRecommendation(req.Type, "ok", len(rows), time.Since(start))
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) cachedResult(key string) (CachedResult, bool) {
	if h.cache == nil {
		return CachedResult{}, false
	}
	cached, ok := h.cache.Get(key)
	metrics.RecordCacheLookup(resultCacheType, ok)
	return cached, ok
}

func (h *Handler) storeResult(key string, result CachedResult) {
	if h.cache == nil {
		return
	}
	h.cache.Add(key, result)
	metrics.CacheSize.WithLabelValues(resultCacheType).Set(float64(h.cache.Len()))
}

// classifyError maps engine errors to an HTTP status, a metrics outcome and
// the client-facing message.
func classifyError(err error) (status int, outcome, message string) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, recommend.ErrNotInitialized):
		return http.StatusNotFound, "not_initialized", err.Error()
	case errors.Is(err, recommend.ErrInvalidInput):
		return http.StatusBadRequest, "invalid", err.Error()
	default:
		return http.StatusInternalServerError, "error", "Internal server error"
	}
}

// metricsType bounds the type label to known values.
func metricsType(t string) string {
	switch t {
	case TypeContent, TypePrice, TypeCF, TypePersonalized, TypeBudget:
		return t
	default:
		return "unknown"
	}
}
