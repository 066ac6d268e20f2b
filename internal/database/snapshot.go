// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/toolrec/internal/metrics"
	"github.com/tomtom215/toolrec/internal/recommend"
)

// Rows come back in insertion order, which is the catalog order the engine relies on.
const selectProducts = `
	SELECT product_id,
	       COALESCE(product_name, ''),
	       COALESCE(description, ''),
	       COALESCE(category, ''),
	       COALESCE(subcategory, ''),
	       COALESCE(brand, ''),
	       COALESCE(material, ''),
	       price,
	       COALESCE(image_url, ''),
	       COALESCE(product_url, '')
	FROM products
	ORDER BY rowid`

const selectInteractions = `
	SELECT user_id, product_id, COALESCE(interaction_type, '')
	FROM interactions
	ORDER BY rowid`

// LoadProducts returns every catalog product in insertion order.
func (db *DB) LoadProducts(ctx context.Context) (products []recommend.Product, err error) {
	if db.conn == nil {
		return nil, ErrClosed
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "products", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, selectProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer closeWithLog(rows, "product rows")

	for rows.Next() {
		var p recommend.Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Description, &p.Category,
			&p.Subcategory, &p.Brand, &p.Material, &p.Price, &p.ImageURL, &p.ProductURL); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// LoadInteractions returns the interaction log in insertion order.
// An empty table yields a nil slice, meaning no log is available.
func (db *DB) LoadInteractions(ctx context.Context) (events []recommend.InteractionEvent, err error) {
	if db.conn == nil {
		return nil, ErrClosed
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "interactions", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, selectInteractions)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer closeWithLog(rows, "interaction rows")

	for rows.Next() {
		var (
			ev    recommend.InteractionEvent
			itype string
		)
		if err := rows.Scan(&ev.UserID, &ev.ProductID, &itype); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		ev.InteractionType = recommend.InteractionType(itype)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interactions: %w", err)
	}
	return events, nil
}

// LoadSnapshot loads both tables concurrently. It implements recommend.SnapshotSource.
func (db *DB) LoadSnapshot(ctx context.Context) (*recommend.Snapshot, error) {
	var snap recommend.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := db.LoadProducts(gctx)
		snap.Products = products
		return err
	})
	g.Go(func() error {
		events, err := db.LoadInteractions(gctx)
		snap.Events = events
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// InsertProducts appends products in slice order inside one transaction.
func (db *DB) InsertProducts(ctx context.Context, products []recommend.Product) error {
	return db.insertBatch(ctx, "products",
		`INSERT INTO products (product_id, product_name, description, category, subcategory,
			brand, material, price, image_url, product_url) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(products), func(stmt *sql.Stmt, i int) error {
			p := products[i]
			_, err := stmt.ExecContext(ctx, p.ProductID, p.ProductName, p.Description, p.Category,
				p.Subcategory, p.Brand, p.Material, p.Price, p.ImageURL, p.ProductURL)
			return err
		})
}

// InsertInteractions appends interaction events in slice order inside one transaction.
func (db *DB) InsertInteractions(ctx context.Context, events []recommend.InteractionEvent) error {
	return db.insertBatch(ctx, "interactions",
		`INSERT INTO interactions (user_id, product_id, interaction_type) VALUES (?, ?, ?)`,
		len(events), func(stmt *sql.Stmt, i int) error {
			ev := events[i]
			_, err := stmt.ExecContext(ctx, ev.UserID, ev.ProductID, string(ev.InteractionType))
			return err
		})
}

func (db *DB) insertBatch(ctx context.Context, table, query string, n int, exec func(*sql.Stmt, int) error) (err error) {
	if db.conn == nil {
		return ErrClosed
	}
	if n == 0 {
		return nil
	}
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", table, time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := 0; i < n; i++ {
		if err = exec(stmt, i); err != nil {
			return fmt.Errorf("failed to insert into %s (row %d): %w", table, i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s insert: %w", table, err)
	}
	return nil
}

// CountProducts returns the number of catalog rows.
func (db *DB) CountProducts(ctx context.Context) (int, error) {
	if db.conn == nil {
		return 0, ErrClosed
	}
	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
