// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"context"
	"time"
)

// Product is one catalog entry. Optional text fields are empty strings,
// never absent; the ingestion layer is responsible for that.
type Product struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Brand       string  `json:"brand"`
	Material    string  `json:"material"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	ProductURL  string  `json:"product_url"`
}

// Row projects the product onto the result schema.
//
//nolint:gocritic // hugeParam: Product passed by value to keep call sites simple
func (p Product) Row() ProductRow {
	return ProductRow{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Category:    p.Category,
		Brand:       p.Brand,
		Material:    p.Material,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		ProductURL:  p.ProductURL,
	}
}

// ProductRow is a recommendation result row. Field order is the wire order.
type ProductRow struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Material    string  `json:"material"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	ProductURL  string  `json:"product_url"`
}

// InteractionType names a kind of user/product event.
type InteractionType string

// Known interaction types.
const (
	InteractionPurchase  InteractionType = "purchase"
	InteractionAddToCart InteractionType = "add_to_cart"
	InteractionWishlist  InteractionType = "wishlist"
	InteractionCompare   InteractionType = "compare"
	InteractionView      InteractionType = "view"
	InteractionSearch    InteractionType = "search"
)

// interactionWeights maps event types to matrix weights. Unlisted types weigh 0.
var interactionWeights = map[InteractionType]float64{
	InteractionPurchase:  5,
	InteractionAddToCart: 3,
	InteractionWishlist:  2,
	InteractionCompare:   2,
	InteractionView:      1,
	InteractionSearch:    1,
}

// Weight returns the matrix weight of the interaction type.
func (t InteractionType) Weight() float64 {
	return interactionWeights[t]
}

// InteractionEvent is one logged user action on a product.
type InteractionEvent struct {
	UserID          int             `json:"user_id"`
	ProductID       int             `json:"product_id"`
	InteractionType InteractionType `json:"interaction_type"`
}

// Snapshot is a consistent read of the catalog and interaction log.
// Events is nil when no interaction log is available.
type Snapshot struct {
	Products []Product
	Events   []InteractionEvent
}

// SnapshotSource loads snapshots. Implemented by the database layer.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// ScoredProduct pairs a product ID with a model score.
type ScoredProduct struct {
	ProductID int     `json:"product_id"`
	Score     float64 `json:"score"`
}

// Stats describes a built engine.
type Stats struct {
	ProductsLoaded     int           `json:"products_loaded"`
	InteractionsLoaded int           `json:"interactions_loaded"`
	Users              int           `json:"users"`
	MatrixProducts     int           `json:"matrix_products"`
	VocabularySize     int           `json:"vocabulary_size"`
	CollaborativeReady bool          `json:"collaborative_ready"`
	BuildDuration      time.Duration `json:"build_duration"`
	BuiltAt            time.Time     `json:"built_at"`
}
