// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import "net/http"

// healthResponse is the /api/health body.
type healthResponse struct {
	Status             string `json:"status"`
	ProductsLoaded     int    `json:"products_loaded"`
	InteractionsLoaded int    `json:"interactions_loaded"`
}

// Health handles GET /api/health. It reports 503 until an engine is built.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	engine, err := h.holder.Load()
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	stats := engine.Stats()
	respondJSON(w, http.StatusOK, healthResponse{
		Status:             "ok",
		ProductsLoaded:     stats.ProductsLoaded,
		InteractionsLoaded: stats.InteractionsLoaded,
	})
}
