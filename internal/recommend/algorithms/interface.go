// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

import (
	"math"
	"sort"
)

// Neighbor is a position paired with a score. Depending on the model the
// score is a similarity (higher is closer) or a distance (lower is closer).
type Neighbor struct {
	Index int
	Score float64
}

// SortDescending orders by score, highest first, keeping position order on ties.
func SortDescending(ns []Neighbor) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Score > ns[j].Score
	})
}

// SortAscending orders by score, lowest first, keeping position order on ties.
func SortAscending(ns []Neighbor) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Score < ns[j].Score
	})
}

// cosineSimilarity computes the cosine of two equal-length dense vectors.
// Returns 0 when either vector has zero norm.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 bounds floating point drift in similarity values.
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
