// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

// UserKNN answers nearest-neighbour queries over the rows of an
// InteractionMatrix using cosine distance (1 - cosine similarity).
// A zero vector is at distance 1 from every row.
//
// The search is brute force: catalogs here hold hundreds of users, not
// millions, and exact results keep rankings reproducible.
type UserKNN struct {
	matrix *InteractionMatrix
}

// NewUserKNN indexes the matrix rows.
func NewUserKNN(m *InteractionMatrix) *UserKNN {
	return &UserKNN{matrix: m}
}

// Distance returns the cosine distance between rows a and b.
func (k *UserKNN) Distance(a, b int) float64 {
	return 1 - cosineSimilarity(k.matrix.Row(a), k.matrix.Row(b))
}

// Neighbors returns up to n rows closest to row, excluding row itself, in
// ascending distance order with ties in row order. Fewer rows are returned
// when the matrix has fewer than n+1 users.
func (k *UserKNN) Neighbors(row, n int) []Neighbor {
	if n <= 0 {
		return nil
	}
	users := k.matrix.Users()
	out := make([]Neighbor, 0, users)
	for other := 0; other < users; other++ {
		if other == row {
			continue
		}
		out = append(out, Neighbor{Index: other, Score: k.Distance(row, other)})
	}
	SortAscending(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
