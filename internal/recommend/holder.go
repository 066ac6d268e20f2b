// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoEngine is returned by Holder queries before the first successful build.
var ErrNoEngine = errors.New("recommendation engine not built")

// BuildObserver is notified after every rebuild attempt.
type BuildObserver func(stats Stats, duration time.Duration, err error)

// HolderOption configures a Holder.
type HolderOption func(*Holder)

// WithBuildObserver registers a callback for rebuild outcomes.
func WithBuildObserver(fn BuildObserver) HolderOption {
	return func(h *Holder) { h.observer = fn }
}

// Holder owns the live engine. Rebuilds construct a new Engine from the
// snapshot source and swap it in atomically; readers never block.
type Holder struct {
	config *Config
	source SnapshotSource
	logger zerolog.Logger

	live atomic.Pointer[versionedEngine]

	// rebuildMu serializes rebuilds so generations increase in build order.
	rebuildMu sync.Mutex
	observer  BuildObserver
}

// NewHolder creates an empty Holder. Call Rebuild (or Swap) before serving.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHolder(cfg *Config, source SnapshotSource, logger zerolog.Logger, opts ...HolderOption) *Holder {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &Holder{
		config: cfg,
		source: source,
		logger: logger.With().Str("component", "engine_holder").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Rebuild loads a fresh snapshot and swaps in a new engine. On failure the
// previous engine stays live.
func (h *Holder) Rebuild(ctx context.Context) error {
	h.rebuildMu.Lock()
	defer h.rebuildMu.Unlock()

	start := time.Now()
	engine, err := h.build(ctx)
	duration := time.Since(start)

	if err != nil {
		h.logger.Error().Err(err).Dur("duration", duration).Msg("engine rebuild failed, keeping previous engine")
		if h.observer != nil {
			h.observer(Stats{}, duration, err)
		}
		return err
	}

	gen := h.swapLocked(engine)
	h.logger.Info().
		Uint64("generation", gen).
		Int("products", engine.stats.ProductsLoaded).
		Int("interactions", engine.stats.InteractionsLoaded).
		Dur("duration", duration).
		Msg("engine swapped")
	if h.observer != nil {
		h.observer(engine.stats, duration, nil)
	}
	return nil
}

func (h *Holder) build(ctx context.Context) (*Engine, error) {
	if h.source == nil {
		return nil, errors.New("no snapshot source configured")
	}
	snap, err := h.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	engine, err := NewEngine(h.config, snap.Products, snap.Events, h.logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}

// versionedEngine pairs an engine with its generation so readers observe both
// from the same swap.
type versionedEngine struct {
	engine     *Engine
	generation uint64
}

// Swap installs engine and returns its generation.
func (h *Holder) Swap(engine *Engine) uint64 {
	h.rebuildMu.Lock()
	defer h.rebuildMu.Unlock()
	return h.swapLocked(engine)
}

func (h *Holder) swapLocked(engine *Engine) uint64 {
	var gen uint64 = 1
	if prev := h.live.Load(); prev != nil {
		gen = prev.generation + 1
	}
	h.live.Store(&versionedEngine{engine: engine, generation: gen})
	return gen
}

// Load returns the live engine, or ErrNoEngine before the first build.
func (h *Holder) Load() (*Engine, error) {
	engine, _, err := h.Current()
	return engine, err
}

// Current returns the live engine and its generation. Cached results keyed by
// generation become unreachable after a swap.
func (h *Holder) Current() (*Engine, uint64, error) {
	live := h.live.Load()
	if live == nil {
		return nil, 0, ErrNoEngine
	}
	return live.engine, live.generation, nil
}

// Generation returns the number of swaps so far.
func (h *Holder) Generation() uint64 {
	if live := h.live.Load(); live != nil {
		return live.generation
	}
	return 0
}
