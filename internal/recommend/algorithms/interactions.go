// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

import "sort"

// Cell is one (user, product, weight) observation fed to the matrix builder.
type Cell struct {
	UserID    int
	ProductID int
	Weight    float64
}

// InteractionMatrix is a dense user x product table of summed weights.
// Rows are the distinct user IDs and columns the distinct product IDs seen in
// the input, both in ascending ID order. Missing pairs are zero.
type InteractionMatrix struct {
	userIDs    []int
	productIDs []int
	userRow    map[int]int
	productCol map[int]int
	scores     [][]float64
}

// NewInteractionMatrix sums cells per (user, product) pair. A zero-weight cell
// still registers its user and product.
func NewInteractionMatrix(cells []Cell) *InteractionMatrix {
	users := make(map[int]struct{})
	products := make(map[int]struct{})
	for _, c := range cells {
		users[c.UserID] = struct{}{}
		products[c.ProductID] = struct{}{}
	}

	m := &InteractionMatrix{
		userIDs:    sortedKeys(users),
		productIDs: sortedKeys(products),
		userRow:    make(map[int]int, len(users)),
		productCol: make(map[int]int, len(products)),
	}
	for i, id := range m.userIDs {
		m.userRow[id] = i
	}
	for j, id := range m.productIDs {
		m.productCol[id] = j
	}

	m.scores = make([][]float64, len(m.userIDs))
	for i := range m.scores {
		m.scores[i] = make([]float64, len(m.productIDs))
	}
	for _, c := range cells {
		m.scores[m.userRow[c.UserID]][m.productCol[c.ProductID]] += c.Weight
	}
	return m
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Users returns the number of rows.
func (m *InteractionMatrix) Users() int { return len(m.userIDs) }

// Products returns the number of columns.
func (m *InteractionMatrix) Products() int { return len(m.productIDs) }

// UserRow returns the row of userID.
func (m *InteractionMatrix) UserRow(userID int) (int, bool) {
	row, ok := m.userRow[userID]
	return row, ok
}

// UserID returns the user ID of row.
func (m *InteractionMatrix) UserID(row int) int { return m.userIDs[row] }

// ProductID returns the product ID of column col.
func (m *InteractionMatrix) ProductID(col int) int { return m.productIDs[col] }

// Score returns the summed weight of (userID, productID), 0 when absent.
func (m *InteractionMatrix) Score(userID, productID int) float64 {
	row, ok := m.userRow[userID]
	if !ok {
		return 0
	}
	col, ok := m.productCol[productID]
	if !ok {
		return 0
	}
	return m.scores[row][col]
}

// Row returns the scores of a row. Callers must not modify it.
func (m *InteractionMatrix) Row(row int) []float64 { return m.scores[row] }

// TopInteractions returns the columns with a non-zero score for row, highest
// score first, ties in column order.
func (m *InteractionMatrix) TopInteractions(row int) []Neighbor {
	var out []Neighbor
	for j, v := range m.scores[row] {
		if v != 0 {
			out = append(out, Neighbor{Index: j, Score: v})
		}
	}
	SortDescending(out)
	return out
}

// SumRows adds the given rows elementwise.
func (m *InteractionMatrix) SumRows(rows []int) []float64 {
	sum := make([]float64, len(m.productIDs))
	for _, r := range rows {
		for j, v := range m.scores[r] {
			sum[j] += v
		}
	}
	return sum
}
