// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package config provides centralized configuration management for Toolrec.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Only the environment variables listed
below are read; anything else in the environment is ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST, HTTP_PORT: bind address (default: 0.0.0.0:5000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Database:
  - DUCKDB_PATH: database file (default: /data/toolrec.duckdb)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS, DUCKDB_MAX_CONNECTIONS
  - SEED_SAMPLE_DATA: seed the sample catalog into an empty database
  - DB_BREAKER_FAILURES, DB_BREAKER_TIMEOUT, DB_BREAKER_INTERVAL

Recommendations:
  - RECOMMEND_TOP_N, RECOMMEND_NEIGHBORS, RECOMMEND_BUDGET_TOP_K
  - RECOMMEND_REFRESH_INTERVAL: periodic rebuild (0 disables)
  - RECOMMEND_RELOAD_INTERVAL, RECOMMEND_RELOAD_BURST: on-demand reload throttle
  - RECOMMEND_REQUEST_TIMEOUT
  - RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line

# Config File

CONFIG_PATH points at a YAML file; otherwise config.yaml, config.yml,
/etc/toolrec/config.yaml and /etc/toolrec/config.yml are tried in order.

	server:
	  port: 8080
	recommend:
	  refresh_interval: 15m
*/
package config
