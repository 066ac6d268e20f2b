// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import "net/http"

// Products handles GET /api/products, a filtered and paginated catalog view.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	query, msg := parseProductsQuery(r.URL.Query())
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	engine, err := h.holder.Load()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Recommendation engine not ready", err)
		return
	}
	respondJSON(w, http.StatusOK, engine.Catalog().Browse(query))
}
