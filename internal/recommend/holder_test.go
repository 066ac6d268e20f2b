// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubSource struct {
	mu    sync.Mutex
	snap  *Snapshot
	err   error
	calls int
}

func (s *stubSource) LoadSnapshot(context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

func (s *stubSource) set(snap *Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap, s.err = snap, err
}

func TestHolder_LoadBeforeBuild(t *testing.T) {
	t.Parallel()

	h := NewHolder(nil, &stubSource{}, testLogger())
	if _, err := h.Load(); !errors.Is(err, ErrNoEngine) {
		t.Errorf("Load() error = %v, want ErrNoEngine", err)
	}
	if h.Generation() != 0 {
		t.Errorf("Generation() = %d, want 0", h.Generation())
	}
}

func TestHolder_Rebuild(t *testing.T) {
	t.Parallel()

	src := &stubSource{snap: &Snapshot{Products: cfCatalog(), Events: cfEvents()}}
	var observed []error
	h := NewHolder(DefaultConfig(), src, testLogger(), WithBuildObserver(func(_ Stats, _ time.Duration, err error) {
		observed = append(observed, err)
	}))

	if err := h.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	first, gen, err := h.Current()
	if err != nil || gen != 1 {
		t.Fatalf("Current() = gen %d, err %v", gen, err)
	}
	if first.Stats().ProductsLoaded != 4 {
		t.Errorf("products = %d, want 4", first.Stats().ProductsLoaded)
	}

	// A failed rebuild keeps the previous engine and generation.
	src.set(nil, errors.New("database unavailable"))
	if err := h.Rebuild(context.Background()); err == nil {
		t.Fatal("expected rebuild error")
	}
	current, _ := h.Load()
	if current != first || h.Generation() != 1 {
		t.Error("failed rebuild replaced the live engine")
	}

	// An empty catalog is rejected the same way.
	src.set(&Snapshot{}, nil)
	if err := h.Rebuild(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty snapshot error = %v, want ErrEmptyCatalog", err)
	}

	src.set(&Snapshot{Products: dispatchCatalog()}, nil)
	if err := h.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	second, _ := h.Load()
	if second == first || h.Generation() != 2 {
		t.Errorf("generation = %d, want 2 with a new engine", h.Generation())
	}
	if second.HasInteractions() {
		t.Error("catalog-only snapshot produced an interaction matrix")
	}

	if len(observed) != 4 || observed[0] != nil || observed[1] == nil || observed[3] != nil {
		t.Errorf("observer outcomes = %v", observed)
	}
}

func TestHolder_Swap(t *testing.T) {
	t.Parallel()

	h := NewHolder(nil, nil, testLogger())
	e := mustEngine(t, dispatchCatalog(), nil)
	if gen := h.Swap(e); gen != 1 {
		t.Errorf("Swap() = %d, want 1", gen)
	}
	if gen := h.Swap(e); gen != 2 {
		t.Errorf("Swap() = %d, want 2", gen)
	}
	if err := h.Rebuild(context.Background()); err == nil {
		t.Error("Rebuild() without a source should fail")
	}
}

func TestHolder_ConcurrentReadsDuringRebuild(t *testing.T) {
	t.Parallel()

	src := &stubSource{snap: &Snapshot{Products: cfCatalog(), Events: cfEvents()}}
	h := NewHolder(nil, src, testLogger())
	if err := h.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = h.Rebuild(context.Background())
		}()
		go func() {
			defer wg.Done()
			e, err := h.Load()
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := e.ContentRecommendations(10); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if h.Generation() != 9 {
		t.Errorf("Generation() = %d, want 9", h.Generation())
	}
}
