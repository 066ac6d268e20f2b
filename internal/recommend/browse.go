// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"sort"
	"strings"
)

// Browse sort orders.
const (
	SortCatalog   = ""
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// BrowseQuery filters and pages the catalog. Nil price bounds are open.
type BrowseQuery struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	PageSize int
}

// BrowseResult is one page of catalog products.
type BrowseResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// Browse filters the catalog by category (case-insensitive) and price, sorts
// it, and returns the requested 1-based page.
func (c *Catalog) Browse(q BrowseQuery) BrowseResult {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultBrowsePageSize
	}

	matched := make([]Product, 0, len(c.products))
	for i := range c.products {
		p := &c.products[i]
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		matched = append(matched, *p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortName:
		sort.SliceStable(matched, func(i, j int) bool {
			return strings.ToLower(matched[i].ProductName) < strings.ToLower(matched[j].ProductName)
		})
	}

	result := BrowseResult{
		Products: []Product{},
		Total:    len(matched),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	start := (q.Page - 1) * q.PageSize
	if start >= len(matched) {
		return result
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	result.Products = matched[start:end]
	return result
}

// DefaultBrowsePageSize is the page size used when none is requested.
const DefaultBrowsePageSize = 20
