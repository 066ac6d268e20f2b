// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases", "Mayo Scissors", []string{"mayo", "scissors"}},
		{"drops stop words", "the scissors with a curved blade", []string{"scissors", "curved", "blade"}},
		{"drops single characters", "a b c forceps", []string{"forceps"}},
		{"splits on punctuation", "stainless-steel, 14cm", []string{"stainless", "steel", "14cm"}},
		{"keeps underscores", "needle_holder", []string{"needle_holder"}},
		{"empty", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	if !IsStopWord("the") {
		t.Error("IsStopWord(the) = false")
	}
	if IsStopWord("scalpel") {
		t.Error("IsStopWord(scalpel) = true")
	}
}

func TestFitTFIDF_Weights(t *testing.T) {
	t.Parallel()

	m := FitTFIDF([]string{
		"scalpel steel",
		"scalpel titanium",
		"forceps steel",
	})

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if m.VocabularySize() != 4 {
		t.Fatalf("VocabularySize() = %d, want 4", m.VocabularySize())
	}

	// scalpel and steel both have df=2, so doc 0 has equal weights of 1/sqrt(2).
	want := 1 / math.Sqrt2
	if got := m.Weight(0, "scalpel"); math.Abs(got-want) > 1e-9 {
		t.Errorf("Weight(0, scalpel) = %f, want %f", got, want)
	}
	if got := m.Weight(0, "titanium"); got != 0 {
		t.Errorf("Weight(0, titanium) = %f, want 0", got)
	}

	// titanium (df=1) outweighs scalpel (df=2) in doc 1.
	if m.Weight(1, "titanium") <= m.Weight(1, "scalpel") {
		t.Error("rarer term should carry more weight")
	}
}

func TestTFIDF_CosineBounds(t *testing.T) {
	t.Parallel()

	m := FitTFIDF([]string{"mayo scissors", "mayo scissors", "retractor", ""})

	if got := m.Cosine(0, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("identical docs cosine = %f, want 1", got)
	}
	if got := m.Cosine(0, 2); got != 0 {
		t.Errorf("disjoint docs cosine = %f, want 0", got)
	}
	if got := m.Cosine(3, 3); got != 0 {
		t.Errorf("empty doc self cosine = %f, want 0", got)
	}
}

func TestSimilarityMatrix(t *testing.T) {
	t.Parallel()

	m := FitTFIDF([]string{
		"curved mayo scissors steel",
		"straight mayo scissors steel",
		"needle holder titanium",
		"mayo scissors",
	})
	sm := NewSimilarityMatrix(m)

	if sm.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", sm.Size())
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if sm.At(i, j) != sm.At(j, i) {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
			if v := sm.At(i, j); v < 0 || v > 1 {
				t.Errorf("At(%d,%d) = %f out of [0,1]", i, j, v)
			}
		}
	}

	ranked := sm.Ranked(0)
	if len(ranked) != 3 {
		t.Fatalf("Ranked(0) len = %d, want 3", len(ranked))
	}
	for _, n := range ranked {
		if n.Index == 0 {
			t.Error("Ranked(0) contains the query row")
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("Ranked(0) not descending at %d", i)
		}
	}
	if ranked[len(ranked)-1].Index != 2 {
		t.Errorf("least similar = %d, want 2", ranked[len(ranked)-1].Index)
	}
}

func TestSimilarityMatrix_TiesKeepRowOrder(t *testing.T) {
	t.Parallel()

	sm := NewSimilarityMatrix(FitTFIDF([]string{"alpha", "beta", "gamma", "delta"}))

	ranked := sm.Ranked(1)
	want := []int{0, 2, 3}
	for i, n := range ranked {
		if n.Index != want[i] {
			t.Errorf("Ranked(1)[%d] = %d, want %d", i, n.Index, want[i])
		}
	}
}
