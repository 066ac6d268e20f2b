// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/toolrec/internal/recommend"
	"github.com/tomtom215/toolrec/internal/validation"
)

// Recommendation types accepted by /api/recommend.
const (
	TypeContent      = "content"
	TypePrice        = "price"
	TypeCF           = "cf"
	TypePersonalized = "personalized"
	TypeBudget       = "budget"
)

// recommendRequest is a parsed /api/recommend query.
type recommendRequest struct {
	Type      string
	ProductID int
	UserID    int
	Budget    string
	TopN      int // 0 means the engine default
}

// topNQuery validates an explicit top_n.
type topNQuery struct {
	TopN int `query:"top_n" validate:"min=1,max=50"`
}

// budgetQuery validates the budget band name.
type budgetQuery struct {
	Budget string `query:"budget" validate:"budget"`
}

// parseRecommendRequest applies the check order of /api/recommend and
// returns the client-facing error message on failure.
func parseRecommendRequest(q url.Values) (recommendRequest, string) {
	req := recommendRequest{Type: strings.TrimSpace(q.Get("type"))}
	if req.Type == "" {
		req.Type = TypeContent
	}

	switch req.Type {
	case TypeCF, TypePersonalized:
		userID, present, err := intParam(q, "user_id")
		if !present {
			return req, "Missing user_id"
		}
		if err != nil {
			return req, "Invalid user_id"
		}
		req.UserID = userID

	case TypeBudget:
		req.Budget = strings.TrimSpace(q.Get("budget"))
		if req.Budget == "" {
			return req, "Missing budget"
		}
		if verr := validation.ValidateStruct(&budgetQuery{Budget: req.Budget}); verr != nil {
			return req, "Invalid budget"
		}
		userID, _, err := intParam(q, "user_id")
		if err != nil {
			return req, "Invalid user_id"
		}
		req.UserID = userID

	default:
		productID, present, err := intParam(q, "product_id")
		if !present {
			return req, "Missing product_id"
		}
		if err != nil {
			return req, "Invalid product_id"
		}
		req.ProductID = productID
		if req.Type != TypeContent && req.Type != TypePrice {
			return req, "Invalid type"
		}
	}

	if req.Type == TypeContent {
		return req, ""
	}
	topN, present, err := intParam(q, "top_n")
	if err != nil {
		return req, "Invalid top_n"
	}
	if present {
		if verr := validation.ValidateStruct(&topNQuery{TopN: topN}); verr != nil {
			return req, verr.First().Error()
		}
		req.TopN = topN
	}
	return req, ""
}

// cacheKey identifies a result for one engine generation.
func (req recommendRequest) cacheKey(generation uint64) string {
	switch req.Type {
	case TypeCF, TypePersonalized:
		return fmt.Sprintf("%d:%s:%d:%d", generation, req.Type, req.UserID, req.TopN)
	case TypeBudget:
		return fmt.Sprintf("%d:%s:%s:%d:%d", generation, req.Type, strings.ToLower(req.Budget), req.UserID, req.TopN)
	default:
		return fmt.Sprintf("%d:%s:%d:%d", generation, req.Type, req.ProductID, req.TopN)
	}
}

// execute runs the request against one engine.
func (req recommendRequest) execute(engine *recommend.Engine) ([]recommend.ProductRow, error) {
	switch req.Type {
	case TypeContent:
		return engine.ContentRecommendations(req.ProductID)
	case TypePrice:
		return engine.PriceRecommendations(req.ProductID, req.TopN)
	case TypeCF:
		return engine.CollaborativeRecommendations(req.UserID, req.TopN)
	case TypePersonalized:
		return engine.PersonalizedRecommendations(req.UserID, req.TopN)
	case TypeBudget:
		return engine.BudgetRecommendations(req.UserID, req.Budget, req.TopN)
	default:
		return nil, &recommend.InvalidInputError{Field: "type", Message: "Invalid type"}
	}
}

// productsQuery holds validated /api/products parameters.
type productsQuery struct {
	Category string   `query:"category" validate:"max=200"`
	MinPrice *float64 `query:"min_price" validate:"omitempty,gte=0"`
	MaxPrice *float64 `query:"max_price" validate:"omitempty,gte=0"`
	Sort     string   `query:"sort" validate:"omitempty,oneof=price_asc price_desc name"`
	Page     int      `query:"page" validate:"min=1"`
	PageSize int      `query:"page_size" validate:"min=1,max=100"`
}

// parseProductsQuery parses and validates /api/products parameters.
func parseProductsQuery(q url.Values) (recommend.BrowseQuery, string) {
	pq := productsQuery{
		Category: strings.TrimSpace(q.Get("category")),
		Sort:     strings.TrimSpace(q.Get("sort")),
		Page:     1,
		PageSize: recommend.DefaultBrowsePageSize,
	}

	var err error
	if pq.MinPrice, err = floatParam(q, "min_price"); err != nil {
		return recommend.BrowseQuery{}, "Invalid min_price"
	}
	if pq.MaxPrice, err = floatParam(q, "max_price"); err != nil {
		return recommend.BrowseQuery{}, "Invalid max_price"
	}
	page, present, err := intParam(q, "page")
	if err != nil {
		return recommend.BrowseQuery{}, "Invalid page"
	}
	if present {
		pq.Page = page
	}
	pageSize, present, err := intParam(q, "page_size")
	if err != nil {
		return recommend.BrowseQuery{}, "Invalid page_size"
	}
	if present {
		pq.PageSize = pageSize
	}

	if verr := validation.ValidateStruct(&pq); verr != nil {
		return recommend.BrowseQuery{}, verr.First().Error()
	}
	if pq.MinPrice != nil && pq.MaxPrice != nil && *pq.MinPrice > *pq.MaxPrice {
		return recommend.BrowseQuery{}, "min_price must not exceed max_price"
	}

	return recommend.BrowseQuery{
		Category: pq.Category,
		MinPrice: pq.MinPrice,
		MaxPrice: pq.MaxPrice,
		Sort:     pq.Sort,
		Page:     pq.Page,
		PageSize: pq.PageSize,
	}, ""
}
