// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package algorithms

import (
	"math"
	"sort"
)

// term is one non-zero entry of a sparse TF-IDF row.
type term struct {
	index  int
	weight float64
}

// TFIDFModel holds the L2-normalised TF-IDF rows of a document collection.
//
// Weighting follows the smoothed form used by most text toolkits:
//
//	tf(t, d)  = raw count of t in d
//	idf(t)    = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)   = tf(t, d) * idf(t), then each row scaled to unit length
//
// The vocabulary comes only from the supplied documents.
type TFIDFModel struct {
	vocabulary map[string]int
	idf        []float64
	rows       [][]term
}

// FitTFIDF tokenizes docs and builds the model.
func FitTFIDF(docs []string) *TFIDFModel {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Sorted vocabulary keeps term indices stable across runs.
	words := make([]string, 0, len(df))
	for w := range df {
		words = append(words, w)
	}
	sort.Strings(words)

	m := &TFIDFModel{
		vocabulary: make(map[string]int, len(words)),
		idf:        make([]float64, len(words)),
		rows:       make([][]term, len(docs)),
	}
	n := float64(len(docs))
	for i, w := range words {
		m.vocabulary[w] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[w]))) + 1
	}

	for i, tokens := range tokenized {
		m.rows[i] = m.weigh(tokens)
	}
	return m
}

// weigh turns a token list into a normalised sparse row sorted by term index.
func (m *TFIDFModel) weigh(tokens []string) []term {
	counts := make(map[int]float64, len(tokens))
	for _, tok := range tokens {
		if idx, ok := m.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	row := make([]term, 0, len(counts))
	var norm float64
	for idx, c := range counts {
		w := c * m.idf[idx]
		row = append(row, term{index: idx, weight: w})
		norm += w * w
	}
	sort.Slice(row, func(i, j int) bool { return row[i].index < row[j].index })

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range row {
			row[i].weight /= norm
		}
	}
	return row
}

// Len returns the number of documents.
func (m *TFIDFModel) Len() int {
	return len(m.rows)
}

// VocabularySize returns the number of distinct terms.
func (m *TFIDFModel) VocabularySize() int {
	return len(m.idf)
}

// Weight returns the normalised weight of word in document doc, or 0.
func (m *TFIDFModel) Weight(doc int, word string) float64 {
	idx, ok := m.vocabulary[word]
	if !ok || doc < 0 || doc >= len(m.rows) {
		return 0
	}
	for _, t := range m.rows[doc] {
		if t.index == idx {
			return t.weight
		}
	}
	return 0
}

// Cosine returns the cosine similarity of documents a and b. Rows are unit
// length, so this is a sparse dot product.
func (m *TFIDFModel) Cosine(a, b int) float64 {
	ra, rb := m.rows[a], m.rows[b]
	var dot float64
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		switch {
		case ra[i].index == rb[j].index:
			dot += ra[i].weight * rb[j].weight
			i++
			j++
		case ra[i].index < rb[j].index:
			i++
		default:
			j++
		}
	}
	return clamp01(dot)
}
