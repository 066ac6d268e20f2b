// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Rate limit bounds.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that configuration values are in range.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return invalid("HTTP read and write timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return invalid("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < minRateLimitRequests || c.Server.RateLimitReqs > maxRateLimitRequests {
		return invalid("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return invalid("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateDatabase validates database configuration
func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return invalid("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return invalid("DUCKDB_THREADS must be non-negative")
	}
	if c.Database.MaxConnections < 1 {
		return invalid("DUCKDB_MAX_CONNECTIONS must be positive")
	}
	if c.Database.BreakerFailures < 1 {
		return invalid("DB_BREAKER_FAILURES must be positive")
	}
	if c.Database.BreakerTimeout <= 0 {
		return invalid("DB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates engine and refresh configuration
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.TopN < 1 || r.Neighbors < 1 || r.BudgetTopK < 1 {
		return invalid("RECOMMEND_TOP_N, RECOMMEND_NEIGHBORS and RECOMMEND_BUDGET_TOP_K must be positive")
	}
	if r.RefreshInterval < 0 {
		return invalid("RECOMMEND_REFRESH_INTERVAL must be non-negative")
	}
	if r.ReloadInterval <= 0 || r.ReloadBurst < 1 {
		return invalid("RECOMMEND_RELOAD_INTERVAL and RECOMMEND_RELOAD_BURST must be positive")
	}
	if r.RequestTimeout <= 0 {
		return invalid("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	if r.CacheSize < 0 {
		return invalid("RECOMMEND_CACHE_SIZE must be non-negative")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return invalid("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return invalid("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
