// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package database

import (
	"context"
	"fmt"
)

// Text columns are nullable; loaders COALESCE them to "".
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id   INTEGER PRIMARY KEY,
		product_name VARCHAR,
		description  VARCHAR,
		category     VARCHAR,
		subcategory  VARCHAR,
		brand        VARCHAR,
		material     VARCHAR,
		price        DOUBLE NOT NULL,
		image_url    VARCHAR,
		product_url  VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		user_id          INTEGER NOT NULL,
		product_id       INTEGER NOT NULL,
		interaction_type VARCHAR NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_user ON interactions(user_id)`,
}

// InitSchema creates the products and interactions tables. It is idempotent.
func (db *DB) InitSchema(ctx context.Context) error {
	if db.conn == nil {
		return ErrClosed
	}
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
