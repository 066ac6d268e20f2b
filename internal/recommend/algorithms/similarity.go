// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

// SimilarityMatrix is a dense, symmetric document x document cosine matrix.
type SimilarityMatrix struct {
	n      int
	values []float64
}

// NewSimilarityMatrix computes every pair of the model eagerly.
func NewSimilarityMatrix(model *TFIDFModel) *SimilarityMatrix {
	n := model.Len()
	sm := &SimilarityMatrix{n: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		sm.values[i*n+i] = model.Cosine(i, i)
		for j := i + 1; j < n; j++ {
			v := model.Cosine(i, j)
			sm.values[i*n+j] = v
			sm.values[j*n+i] = v
		}
	}
	return sm
}

// Size returns the number of rows.
func (s *SimilarityMatrix) Size() int {
	return s.n
}

// At returns the similarity of rows i and j.
func (s *SimilarityMatrix) At(i, j int) float64 {
	return s.values[i*s.n+j]
}

// Ranked returns every row except i ordered by descending similarity to i.
// Equal scores keep row order.
func (s *SimilarityMatrix) Ranked(i int) []Neighbor {
	out := make([]Neighbor, 0, s.n-1)
	for j := 0; j < s.n; j++ {
		if j == i {
			continue
		}
		out = append(out, Neighbor{Index: j, Score: s.values[i*s.n+j]})
	}
	SortDescending(out)
	return out
}
