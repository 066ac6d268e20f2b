// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import (
	"net/http"

	"github.com/tomtom215/toolrec/internal/logging"
)

type reloadResponse struct {
	Status     string `json:"status"`
	Generation uint64 `json:"generation"`
}

// Reload handles POST /api/admin/reload. The rebuild runs asynchronously;
// the response carries the generation serving at the time of the request.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.refresher == nil {
		respondError(w, http.StatusServiceUnavailable, "Reload not available", nil)
		return
	}
	if !h.refresher.RequestRefresh() {
		respondError(w, http.StatusTooManyRequests, "Reload throttled", nil)
		return
	}
	logging.Ctx(r.Context()).Info().Msg("Engine reload requested")
	respondJSON(w, http.StatusAccepted, reloadResponse{Status: "accepted", Generation: h.holder.Generation()})
}
