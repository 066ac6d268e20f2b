// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import (
	"github.com/tomtom215/toolrec/internal/cache"
	"github.com/tomtom215/toolrec/internal/recommend"
)

// Refresher schedules an engine rebuild. RequestRefresh reports false when
// the request was throttled.
type Refresher interface {
	RequestRefresh() bool
}

// Handler serves the recommendation API from the engine currently held by holder.
type Handler struct {
	holder    *recommend.Holder
	cache     *cache.LRU[string, CachedResult]
	refresher Refresher
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// CachedResult is a serialized recommendation response.
type CachedResult struct {
	Body []byte
	Rows int
}

// WithResultCache caches serialized recommendation results.
func WithResultCache(c *cache.LRU[string, CachedResult]) HandlerOption {
	return func(h *Handler) { h.cache = c }
}

// WithRefresher enables POST /api/admin/reload.
func WithRefresher(r Refresher) HandlerOption {
	return func(h *Handler) { h.refresher = r }
}

// NewHandler creates a handler reading engines from holder.
func NewHandler(holder *recommend.Holder, opts ...HandlerOption) *Handler {
	h := &Handler{holder: holder}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
