// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

import "math"

// RankByPriceDistance orders every position except target by the absolute
// difference between its price and the target's price, closest first. Ties
// keep position order. The Score of each Neighbor is the difference.
func RankByPriceDistance(prices []float64, target int) []Neighbor {
	if target < 0 || target >= len(prices) {
		return nil
	}
	ref := prices[target]
	out := make([]Neighbor, 0, len(prices)-1)
	for i, p := range prices {
		if i == target {
			continue
		}
		out = append(out, Neighbor{Index: i, Score: math.Abs(p - ref)})
	}
	SortAscending(out)
	return out
}
