// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

// Package algorithms implements the numeric models behind the recommendation
// engine.
//
// The package works on positions rather than domain identifiers: catalog rows
// for the content and price models, matrix rows and columns for the
// interaction models. The recommend package owns the mapping between ids and
// positions.
//
//   - Tokenize / TFIDFModel: tokenization and TF-IDF weighting of product text.
//   - SimilarityMatrix: dense cosine similarity over TF-IDF rows.
//   - RankByPriceDistance: absolute price proximity.
//   - InteractionMatrix: user x product weighted score table.
//   - UserKNN: brute-force cosine-distance neighbours over user rows.
//
// # Determinism
//
// Every ranking uses a stable sort with position order as the tie-break, so
// identical inputs always produce identical output.
//
// # Thread Safety
//
// All models are built once by their constructor and never modified
// afterwards. Read methods may be called from any number of goroutines.
package algorithms
