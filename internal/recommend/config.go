// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"fmt"
)

// Default limits.
const (
	DefaultTopN       = 5
	DefaultNeighbors  = 5
	DefaultBudgetTopK = 3

	// Content dispatch quotas.
	contentCategoryQuota = 2
	contentBrandQuota    = 2
	contentMaterialQuota = 1
)

// Config contains the engine parameters.
type Config struct {
	// TopN is the result length used when a caller passes top_n <= 0.
	TopN int `json:"top_n"`

	// Neighbors is k for the user kNN model.
	Neighbors int `json:"neighbors"`

	// BudgetTopK is the budget result length used when a caller passes top_k <= 0.
	BudgetTopK int `json:"budget_top_k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TopN:       DefaultTopN,
		Neighbors:  DefaultNeighbors,
		BudgetTopK: DefaultBudgetTopK,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Neighbors < 1 {
		return fmt.Errorf("neighbors must be positive, got %d", c.Neighbors)
	}
	if c.BudgetTopK < 1 {
		return fmt.Errorf("budget_top_k must be positive, got %d", c.BudgetTopK)
	}
	return nil
}

// resultLength substitutes fallback for a non-positive request. Requests are
// not capped here; results are bounded by the candidates available.
func resultLength(requested, fallback int) int {
	if requested <= 0 {
		return fallback
	}
	return requested
}
