// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The typed errors below match them.
var (
	// ErrNotFound indicates an unknown product or user ID.
	ErrNotFound = errors.New("not found")

	// ErrNotInitialized indicates a collaborative query without an interaction log.
	ErrNotInitialized = errors.New("collaborative filtering not initialized")

	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateProduct indicates two catalog rows share a product_id.
	ErrDuplicateProduct = errors.New("duplicate product id")

	// ErrEmptyCatalog indicates construction without any products.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// NotFoundError reports an unknown identifier. Message is caller-facing.
type NotFoundError struct {
	Entity  string
	ID      int
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func productNotFound(id int) error {
	return &NotFoundError{
		Entity:  "product",
		ID:      id,
		Message: fmt.Sprintf("Product ID %d not found.", id),
	}
}

func userNotFound(id int) error {
	return &NotFoundError{
		Entity:  "user",
		ID:      id,
		Message: fmt.Sprintf("User ID %d not found in interaction data.", id),
	}
}

func userWithoutScores(id int) error {
	return &NotFoundError{
		Entity:  "user",
		ID:      id,
		Message: fmt.Sprintf("User ID %d has no scored interactions.", id),
	}
}

// NotInitializedError reports a collaborative or personalized query on an
// engine built without an interaction log.
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string { return "Collaborative filtering not initialized." }

// Is matches ErrNotInitialized.
func (e *NotInitializedError) Is(target error) bool { return target == ErrNotInitialized }

// InvalidInputError reports a malformed argument.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// Is matches ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// DuplicateProductError reports a catalog with a repeated product_id.
type DuplicateProductError struct {
	ProductID int
	FirstRow  int
	SecondRow int
}

func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product id %d at rows %d and %d", e.ProductID, e.FirstRow, e.SecondRow)
}

// Is matches ErrDuplicateProduct.
func (e *DuplicateProductError) Is(target error) bool { return target == ErrDuplicateProduct }
