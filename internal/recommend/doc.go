// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

// Package recommend implements the surgical-tool recommendation engine.
//
// # Architecture
//
// An Engine is built once from a catalog snapshot and an optional
// interaction log. Construction does all the heavy lifting:
//
//   - Catalog: product_id -> row lookup and the combined text of each product
//   - Content model: TF-IDF over combined text and a dense cosine matrix
//   - Interaction matrix: weighted user x product scores (purchase=5,
//     add_to_cart=3, wishlist=2, compare=2, view=1, search=1)
//   - Collaborative model: cosine-distance nearest neighbours over users
//
// The engine answers five query types:
//
//   - ContentRecommendations: category/subcategory, then brand, then material
//     matches taken from the similarity ranking (at most 2+2+1 rows)
//   - PriceRecommendations: closest absolute price difference
//   - CollaborativeRecommendations: products liked by similar users
//   - PersonalizedRecommendations: best content match per top interaction
//   - BudgetRecommendations: products in a price band the user has not bought
//
// # Determinism
//
// Every ranking uses a stable sort and falls back to catalog order (or
// ascending ID order inside the interaction matrix) on ties. Calling a query
// twice against the same engine returns identical results.
//
// # Thread Safety
//
// An Engine is immutable after NewEngine returns; queries take no locks and
// may run from any number of goroutines. Rebuilding on a new snapshot goes
// through Holder, which constructs a fresh Engine and swaps it atomically.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), products, events, logger)
//	if err != nil {
//	    return err
//	}
//	rows, err := engine.ContentRecommendations(42)
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // unknown product
//	}
package recommend
