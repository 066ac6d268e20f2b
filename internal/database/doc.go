// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package database stores the product catalog and the interaction log in DuckDB
and produces the snapshots the recommendation engine is built from.

# Tables

  - products: one row per catalog product; insertion order is catalog order
  - interactions: append-only (user_id, product_id, interaction_type) log

Nullable text columns are COALESCEd to "" when loaded, so the engine never
sees missing values.

# Snapshots

DB.LoadSnapshot reads both tables concurrently with errgroup and satisfies
recommend.SnapshotSource. An empty interactions table yields a nil event
slice, which builds a catalog-only engine. ResilientSource wraps any source
with a sony/gobreaker circuit breaker and exports its state to Prometheus.

# Usage

	db, err := database.Open(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if cfg.Database.Seed {
	    if _, err := db.SeedSampleData(ctx); err != nil {
	        return err
	    }
	}
	source := database.NewResilientSource(db, database.BreakerSettings{
	    ConsecutiveFailures: cfg.Database.BreakerFailures,
	    Timeout:             cfg.Database.BreakerTimeout,
	})
*/
package database
