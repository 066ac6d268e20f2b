// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// EngineRebuilder rebuilds the live recommendation engine.
// Satisfied by *recommend.Holder.
type EngineRebuilder interface {
	Rebuild(ctx context.Context) error
}

// RefreshServiceConfig holds configuration for the refresh service.
type RefreshServiceConfig struct {
	// Interval between scheduled rebuilds. 0 disables the schedule;
	// rebuilds then happen only on request.
	Interval time.Duration

	// ReloadInterval and ReloadBurst throttle on-demand rebuilds.
	// ReloadInterval <= 0 disables throttling.
	ReloadInterval time.Duration
	ReloadBurst    int

	// BuildTimeout bounds a single rebuild.
	// Default: 5m
	BuildTimeout time.Duration
}

// RefreshService keeps the engine current. It rebuilds on a schedule and on
// request; a failed rebuild leaves the previous engine serving.
type RefreshService struct {
	engine  EngineRebuilder
	config  RefreshServiceConfig
	limiter *rate.Limiter
	trigger chan struct{}
	logger  zerolog.Logger
	name    string
}

// NewRefreshService creates a new refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(engine EngineRebuilder, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 5 * time.Minute
	}
	if cfg.ReloadBurst < 1 {
		cfg.ReloadBurst = 1
	}

	limit := rate.Inf
	if cfg.ReloadInterval > 0 {
		limit = rate.Every(cfg.ReloadInterval)
	}

	return &RefreshService{
		engine:  engine,
		config:  cfg,
		limiter: rate.NewLimiter(limit, cfg.ReloadBurst),
		trigger: make(chan struct{}, 1),
		logger:  logger.With().Str("service", "refresh").Logger(),
		name:    "engine-refresh",
	}
}

// RequestRefresh asks for a rebuild. It returns false when throttled.
// Requests arriving while one is already pending are merged into it.
func (s *RefreshService) RequestRefresh() bool {
	if !s.limiter.Allow() {
		return false
	}
	select {
	case s.trigger <- struct{}{}:
	default:
	}
	return true
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("refresh service starting")

	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("refresh service shutting down")
			return ctx.Err()

		case <-tick:
			s.logger.Debug().Msg("scheduled rebuild triggered")
			s.rebuild(ctx, "schedule")

		case <-s.trigger:
			s.logger.Debug().Msg("requested rebuild triggered")
			s.rebuild(ctx, "request")
		}
	}
}

func (s *RefreshService) rebuild(ctx context.Context, reason string) {
	buildCtx, cancel := context.WithTimeout(ctx, s.config.BuildTimeout)
	defer cancel()

	start := time.Now()
	if err := s.engine.Rebuild(buildCtx); err != nil {
		s.logger.Warn().Err(err).Str("reason", reason).Msg("engine rebuild failed, previous engine still serving")
		return
	}
	s.logger.Info().
		Str("reason", reason).
		Dur("duration", time.Since(start)).
		Msg("engine rebuilt")
}

// String returns the service name for logging.
func (s *RefreshService) String() string {
	return s.name
}
