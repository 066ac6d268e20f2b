// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package main is the entry point for the toolrec server.

Toolrec recommends surgical tools from a product catalog and a log of user
interactions. It serves content, price, collaborative, personalized and
budget recommendations over HTTP.

# Startup

 1. Configuration: Koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Database: DuckDB, optional sample-data seeding
 4. Engine: first build from a snapshot of products and interactions
 5. Supervisor tree: engine refresh in the data layer, HTTP in the api layer

A failed first build stops the process. Later rebuild failures are logged and
the previous engine keeps serving.

# Configuration

	HTTP_PORT=5000                   # listen port
	DUCKDB_PATH=/data/toolrec.duckdb # ":memory:" for an in-process store
	SEED_SAMPLE_DATA=true            # insert the sample catalog into an empty store
	RECOMMEND_REFRESH_INTERVAL=10m   # periodic rebuilds, 0 disables
	RECOMMEND_RELOAD_INTERVAL=30s    # throttle for POST /api/admin/reload
	LOG_LEVEL=info
	LOG_FORMAT=json

A YAML file can be supplied with CONFIG_PATH.

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, then the database is checkpointed and closed.
*/
package main
