// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"fmt"
	"strings"
)

// Budget is a price band.
type Budget string

// Budget bands. Low is price <= 50, Medium is 50 < price <= 100, High is
// price > 100.
const (
	BudgetLow    Budget = "Low"
	BudgetMedium Budget = "Medium"
	BudgetHigh   Budget = "High"
)

const (
	lowBudgetCeiling    = 50.0
	mediumBudgetCeiling = 100.0
)

// budgets lists the bands in ascending price order.
var budgets = []Budget{BudgetLow, BudgetMedium, BudgetHigh}

// Budgets returns the band names in ascending price order.
func Budgets() []Budget {
	return append([]Budget(nil), budgets...)
}

// ParseBudget resolves a band name case-insensitively.
func ParseBudget(s string) (Budget, error) {
	name := strings.TrimSpace(s)
	for _, b := range budgets {
		if strings.EqualFold(name, string(b)) {
			return b, nil
		}
	}
	return "", &InvalidInputError{Field: "budget", Message: fmt.Sprintf("Invalid budget %q.", s)}
}

// Contains reports whether price falls in the band.
func (b Budget) Contains(price float64) bool {
	switch b {
	case BudgetLow:
		return price <= lowBudgetCeiling
	case BudgetMedium:
		return price > lowBudgetCeiling && price <= mediumBudgetCeiling
	case BudgetHigh:
		return price > mediumBudgetCeiling
	default:
		return false
	}
}

// BudgetRecommendations returns up to topK products in the budget band, in
// catalog order, skipping products userID has purchased. A userID without
// purchase history (including 0) filters nothing.
func (e *Engine) BudgetRecommendations(userID int, budget string, topK int) ([]ProductRow, error) {
	band, err := ParseBudget(budget)
	if err != nil {
		return nil, err
	}
	topK = resultLength(topK, e.config.BudgetTopK)

	bought := e.purchases[userID]
	rows := make([]int, 0, topK)
	for i := range e.catalog.products {
		if len(rows) == topK {
			break
		}
		p := &e.catalog.products[i]
		if !band.Contains(p.Price) {
			continue
		}
		if _, seen := bought[p.ProductID]; seen {
			continue
		}
		rows = append(rows, i)
	}
	return e.catalog.Rows(rows), nil
}
