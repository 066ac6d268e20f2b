// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/toolrec/internal/logging"
	"github.com/tomtom215/toolrec/internal/recommend"
)

// SeedSampleData inserts a small surgical-tool catalog and interaction log
// when the products table is empty. It reports whether anything was written.
func (db *DB) SeedSampleData(ctx context.Context) (bool, error) {
	n, err := db.CountProducts(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		logging.Debug().Int("products", n).Msg("Catalog not empty, skipping sample data")
		return false, nil
	}

	products := sampleProducts()
	if err := db.InsertProducts(ctx, products); err != nil {
		return false, fmt.Errorf("failed to seed products: %w", err)
	}
	events := sampleInteractions()
	if err := db.InsertInteractions(ctx, events); err != nil {
		return false, fmt.Errorf("failed to seed interactions: %w", err)
	}

	logging.Info().Int("products", len(products)).Int("interactions", len(events)).Msg("Seeded sample catalog")
	return true, nil
}

func sampleProduct(id int, name, desc, category, subcategory, brand, material string, price float64) recommend.Product {
	return recommend.Product{
		ProductID:   id,
		ProductName: name,
		Description: desc,
		Category:    category,
		Subcategory: subcategory,
		Brand:       brand,
		Material:    material,
		Price:       price,
		ImageURL:    fmt.Sprintf("https://example.com/images/%d.jpg", id),
		ProductURL:  fmt.Sprintf("https://example.com/products/%d", id),
	}
}

func sampleProducts() []recommend.Product {
	const (
		cutting  = "Cutting Instruments"
		grasping = "Grasping Instruments"
		retract  = "Retractors"
		steel    = "Stainless Steel"
		titanium = "Titanium"
		carbide  = "Tungsten Carbide"
	)
	return []recommend.Product{
		sampleProduct(101, "Mayo Dissecting Scissors", "Curved heavy scissors for cutting dense tissue and fascia", cutting, "Scissors", "MedLine", steel, 42.50),
		sampleProduct(102, "Metzenbaum Scissors", "Delicate curved scissors for dissecting soft tissue", cutting, "Scissors", "Aesculap", carbide, 89.00),
		sampleProduct(103, "Iris Scissors", "Fine sharp scissors for ophthalmic and plastic surgery", cutting, "Scissors", "MedLine", steel, 24.75),
		sampleProduct(104, "Scalpel Handle No. 3", "Reusable scalpel handle for small surgical blades", cutting, "Scalpels", "Swann-Morton", steel, 15.00),
		sampleProduct(105, "Safety Scalpel No. 10", "Disposable scalpel with retractable blade for large incisions", cutting, "Scalpels", "Swann-Morton", steel, 8.90),
		sampleProduct(106, "Adson Tissue Forceps", "Toothed forceps for grasping skin during suturing", grasping, "Forceps", "Aesculap", steel, 31.20),
		sampleProduct(107, "DeBakey Atraumatic Forceps", "Atraumatic vascular forceps for grasping delicate tissue", grasping, "Forceps", "Integra", titanium, 129.00),
		sampleProduct(108, "Kelly Hemostatic Forceps", "Curved locking forceps for clamping blood vessels", grasping, "Hemostats", "MedLine", steel, 54.00),
		sampleProduct(109, "Mayo-Hegar Needle Holder", "Locking needle holder for suturing with medium needles", grasping, "Needle Holders", "Integra", carbide, 112.40),
		sampleProduct(110, "Castroviejo Needle Holder", "Micro needle holder for fine suturing in microsurgery", grasping, "Needle Holders", "Aesculap", titanium, 245.00),
		sampleProduct(111, "Weitlaner Self-Retaining Retractor", "Self-retaining retractor with sharp prongs for wound exposure", retract, "Self-Retaining", "Integra", steel, 96.00),
		sampleProduct(112, "Army-Navy Retractor", "Double-ended handheld retractor for superficial incisions", retract, "Handheld", "MedLine", steel, 38.00),
		sampleProduct(113, "Balfour Abdominal Retractor", "Self-retaining abdominal retractor with center blade", retract, "Self-Retaining", "Aesculap", steel, 310.00),
		sampleProduct(114, "Senn Retractor", "Small double-ended handheld retractor with sharp rake", retract, "Handheld", "Integra", steel, 27.50),
	}
}

func sampleInteractions() []recommend.InteractionEvent {
	ev := func(user, product int, t recommend.InteractionType) recommend.InteractionEvent {
		return recommend.InteractionEvent{UserID: user, ProductID: product, InteractionType: t}
	}
	return []recommend.InteractionEvent{
		ev(1, 101, recommend.InteractionPurchase),
		ev(1, 102, recommend.InteractionView),
		ev(1, 106, recommend.InteractionAddToCart),
		ev(1, 109, recommend.InteractionWishlist),
		ev(2, 101, recommend.InteractionPurchase),
		ev(2, 103, recommend.InteractionView),
		ev(2, 102, recommend.InteractionCompare),
		ev(2, 108, recommend.InteractionPurchase),
		ev(3, 106, recommend.InteractionView),
		ev(3, 107, recommend.InteractionPurchase),
		ev(3, 109, recommend.InteractionAddToCart),
		ev(3, 110, recommend.InteractionSearch),
		ev(4, 111, recommend.InteractionPurchase),
		ev(4, 112, recommend.InteractionView),
		ev(4, 113, recommend.InteractionWishlist),
		ev(4, 114, recommend.InteractionAddToCart),
		ev(5, 104, recommend.InteractionPurchase),
		ev(5, 105, recommend.InteractionPurchase),
		ev(5, 103, recommend.InteractionAddToCart),
		ev(5, 112, recommend.InteractionView),
		ev(6, 101, recommend.InteractionView),
		ev(6, 104, recommend.InteractionView),
		ev(6, 108, recommend.InteractionAddToCart),
		ev(6, 106, recommend.InteractionPurchase),
	}
}
