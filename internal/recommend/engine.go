// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/toolrec/internal/recommend/algorithms"
)

// Engine answers recommendation queries over one immutable snapshot.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog    *Catalog
	content    *algorithms.TFIDFModel
	similarity *algorithms.SimilarityMatrix
	prices     []float64

	// Nil when the engine was built without an interaction log.
	interactions *algorithms.InteractionMatrix
	knn          *algorithms.UserKNN
	purchases    map[int]map[int]struct{}

	stats Stats
}

// NewEngine builds an engine from a catalog and an optional interaction log.
// A nil events slice builds a catalog-only engine; an empty non-nil slice
// builds an engine with an empty interaction matrix.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, products []Product, events []InteractionEvent, logger zerolog.Logger) (*Engine, error) {
	start := time.Now()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	catalog, err := NewCatalog(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	docs := make([]string, catalog.Len())
	for i := range docs {
		docs[i] = catalog.CombinedText(i)
	}
	content := algorithms.FitTFIDF(docs)

	e := &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		catalog:    catalog,
		content:    content,
		similarity: algorithms.NewSimilarityMatrix(content),
		prices:     catalog.prices,
	}

	if events != nil {
		e.buildCollaborative(events)
	}

	e.stats = Stats{
		ProductsLoaded:     catalog.Len(),
		InteractionsLoaded: len(events),
		VocabularySize:     content.VocabularySize(),
		CollaborativeReady: e.interactions != nil,
		BuildDuration:      time.Since(start),
		BuiltAt:            time.Now(),
	}
	if e.interactions != nil {
		e.stats.Users = e.interactions.Users()
		e.stats.MatrixProducts = e.interactions.Products()
	}

	e.logger.Info().
		Int("products", e.stats.ProductsLoaded).
		Int("interactions", e.stats.InteractionsLoaded).
		Int("users", e.stats.Users).
		Int("vocabulary", e.stats.VocabularySize).
		Dur("duration", e.stats.BuildDuration).
		Msg("recommendation engine built")

	return e, nil
}

func (e *Engine) buildCollaborative(events []InteractionEvent) {
	cells := make([]algorithms.Cell, len(events))
	e.purchases = make(map[int]map[int]struct{})
	for i, ev := range events {
		cells[i] = algorithms.Cell{
			UserID:    ev.UserID,
			ProductID: ev.ProductID,
			Weight:    ev.InteractionType.Weight(),
		}
		if ev.InteractionType == InteractionPurchase {
			bought, ok := e.purchases[ev.UserID]
			if !ok {
				bought = make(map[int]struct{})
				e.purchases[ev.UserID] = bought
			}
			bought[ev.ProductID] = struct{}{}
		}
	}
	e.interactions = algorithms.NewInteractionMatrix(cells)
	e.knn = algorithms.NewUserKNN(e.interactions)
}

// Stats returns build statistics.
func (e *Engine) Stats() Stats { return e.stats }

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// HasInteractions reports whether an interaction log was supplied.
func (e *Engine) HasInteractions() bool { return e.interactions != nil }

// SimilarProducts ranks every other product by descending content similarity.
func (e *Engine) SimilarProducts(productID int) ([]ScoredProduct, error) {
	row, ok := e.catalog.Lookup(productID)
	if !ok {
		return nil, productNotFound(productID)
	}
	ranked := e.similarity.Ranked(row)
	out := make([]ScoredProduct, len(ranked))
	for i, n := range ranked {
		out[i] = ScoredProduct{ProductID: e.catalog.Product(n.Index).ProductID, Score: n.Score}
	}
	return out, nil
}

// ContentRecommendations selects up to 2 category or subcategory matches,
// then up to 2 brand matches, then 1 material match from the similarity
// ranking of productID.
func (e *Engine) ContentRecommendations(productID int) ([]ProductRow, error) {
	row, ok := e.catalog.Lookup(productID)
	if !ok {
		return nil, productNotFound(productID)
	}
	return e.catalog.Rows(e.contentRows(row)), nil
}

func (e *Engine) contentRows(row int) []int {
	target := e.catalog.Product(row)
	ranked := e.similarity.Ranked(row)

	sameCategory := func(i int) bool {
		p := &e.catalog.products[i]
		return p.Category == target.Category || p.Subcategory == target.Subcategory
	}
	sameBrand := func(i int) bool { return e.catalog.products[i].Brand == target.Brand }
	sameMaterial := func(i int) bool { return e.catalog.products[i].Material == target.Material }

	selected := make([]int, 0, contentCategoryQuota+contentBrandQuota+contentMaterialQuota)
	selected = selectMatches(ranked, sameCategory, contentCategoryQuota, selected)
	selected = selectMatches(ranked, sameBrand, contentBrandQuota, selected)
	selected = selectMatches(ranked, sameMaterial, contentMaterialQuota, selected)
	return selected
}

// selectMatches appends up to count rows from ranked that satisfy match and
// are not already in selected. It returns the extended slice.
func selectMatches(ranked []algorithms.Neighbor, match func(row int) bool, count int, selected []int) []int {
	added := 0
	for _, n := range ranked {
		if added == count {
			break
		}
		if containsRow(selected, n.Index) || !match(n.Index) {
			continue
		}
		selected = append(selected, n.Index)
		added++
	}
	return selected
}

func containsRow(rows []int, row int) bool {
	for _, r := range rows {
		if r == row {
			return true
		}
	}
	return false
}

// PriceRecommendations returns the topN products closest in price, or every
// other product when the catalog has fewer than topN+1 entries.
func (e *Engine) PriceRecommendations(productID, topN int) ([]ProductRow, error) {
	row, ok := e.catalog.Lookup(productID)
	if !ok {
		return nil, productNotFound(productID)
	}
	topN = resultLength(topN, e.config.TopN)

	ranked := algorithms.RankByPriceDistance(e.prices, row)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	rows := make([]int, len(ranked))
	for i, n := range ranked {
		rows[i] = n.Index
	}
	return e.catalog.Rows(rows), nil
}

// SimilarUsers returns up to k user IDs nearest to userID by cosine distance.
func (e *Engine) SimilarUsers(userID, k int) ([]int, error) {
	if e.interactions == nil {
		return nil, &NotInitializedError{}
	}
	row, ok := e.interactions.UserRow(userID)
	if !ok {
		return nil, userNotFound(userID)
	}
	if k <= 0 {
		k = e.config.Neighbors
	}
	neighbors := e.knn.Neighbors(row, k)
	ids := make([]int, len(neighbors))
	for i, n := range neighbors {
		ids[i] = e.interactions.UserID(n.Index)
	}
	return ids, nil
}

// CollaborativeRecommendations returns products scored highest by the
// user's nearest neighbours that the user has not interacted with.
func (e *Engine) CollaborativeRecommendations(userID, topN int) ([]ProductRow, error) {
	if e.interactions == nil {
		return nil, &NotInitializedError{}
	}
	row, ok := e.interactions.UserRow(userID)
	if !ok {
		return nil, userNotFound(userID)
	}
	topN = resultLength(topN, e.config.TopN)

	neighbors := e.knn.Neighbors(row, e.config.Neighbors)
	neighborRows := make([]int, len(neighbors))
	for i, n := range neighbors {
		neighborRows[i] = n.Index
	}
	summed := e.interactions.SumRows(neighborRows)
	own := e.interactions.Row(row)

	candidates := make([]algorithms.Neighbor, 0, len(summed))
	for col, score := range summed {
		if own[col] > 0 {
			continue
		}
		candidates = append(candidates, algorithms.Neighbor{Index: col, Score: score})
	}
	algorithms.SortDescending(candidates)

	rows := make([]int, 0, topN)
	for _, c := range candidates {
		if len(rows) == topN {
			break
		}
		catalogRow, ok := e.catalog.Lookup(e.interactions.ProductID(c.Index))
		if !ok {
			continue
		}
		rows = append(rows, catalogRow)
	}
	return e.catalog.Rows(rows), nil
}

// PersonalizedRecommendations returns the best content match for each of
// the user's strongest interactions.
func (e *Engine) PersonalizedRecommendations(userID, topN int) ([]ProductRow, error) {
	if e.interactions == nil {
		return nil, &NotInitializedError{}
	}
	row, ok := e.interactions.UserRow(userID)
	if !ok {
		return nil, userNotFound(userID)
	}
	topN = resultLength(topN, e.config.TopN)

	top := e.interactions.TopInteractions(row)
	if len(top) == 0 {
		return nil, userWithoutScores(userID)
	}

	if len(top) == e.interactions.Products() {
		seed, ok := e.catalog.Lookup(e.interactions.ProductID(top[0].Index))
		if !ok {
			return nil, productNotFound(e.interactions.ProductID(top[0].Index))
		}
		rows := e.contentRows(seed)
		if len(rows) > topN {
			rows = rows[:topN]
		}
		return e.catalog.Rows(rows), nil
	}

	rows := make([]int, 0, topN)
	for _, interaction := range top {
		if len(rows) == topN {
			break
		}
		seed, ok := e.catalog.Lookup(e.interactions.ProductID(interaction.Index))
		if !ok {
			continue
		}
		ranked := e.similarity.Ranked(seed)
		if len(ranked) == 0 {
			continue
		}
		best := ranked[0].Index
		if containsRow(rows, best) {
			continue
		}
		rows = append(rows, best)
	}
	return e.catalog.Rows(rows), nil
}
