// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"fmt"
	"math"
	"strings"
)

// Catalog is the immutable, indexed product list of one engine.
type Catalog struct {
	products []Product
	byID     map[int]int
	combined []string
	prices   []float64
}

// NewCatalog indexes products in the given order. Duplicate IDs are rejected
// with *DuplicateProductError; negative or non-finite prices with
// *InvalidInputError.
func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyCatalog, &InvalidInputError{Field: "products", Message: "catalog has no products"})
	}

	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
		combined: make([]string, len(products)),
		prices:   make([]float64, len(products)),
	}
	copy(c.products, products)

	for i := range c.products {
		p := &c.products[i]
		if first, dup := c.byID[p.ProductID]; dup {
			return nil, &DuplicateProductError{ProductID: p.ProductID, FirstRow: first, SecondRow: i}
		}
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, &InvalidInputError{
				Field:   "price",
				Message: fmt.Sprintf("product %d has invalid price %v", p.ProductID, p.Price),
			}
		}
		c.byID[p.ProductID] = i
		c.combined[i] = CombinedText(p)
		c.prices[i] = p.Price
	}
	return c, nil
}

// CombinedText joins the text attributes used for content similarity. Empty
// fields keep their separator.
func CombinedText(p *Product) string {
	return strings.Join([]string{
		p.ProductName,
		p.Description,
		p.Category,
		p.Subcategory,
		p.Brand,
		p.Material,
	}, " ")
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Lookup returns the row of a product ID.
func (c *Catalog) Lookup(productID int) (int, bool) {
	row, ok := c.byID[productID]
	return row, ok
}

// Product returns the product at row.
func (c *Catalog) Product(row int) Product { return c.products[row] }

// CombinedText returns the combined text of row.
func (c *Catalog) CombinedText(row int) string { return c.combined[row] }

// Rows projects rows onto result rows.
func (c *Catalog) Rows(rows []int) []ProductRow {
	out := make([]ProductRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, c.products[r].Row())
	}
	return out
}
