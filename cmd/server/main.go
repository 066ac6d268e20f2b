// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/toolrec/internal/api"
	"github.com/tomtom215/toolrec/internal/cache"
	"github.com/tomtom215/toolrec/internal/config"
	"github.com/tomtom215/toolrec/internal/database"
	"github.com/tomtom215/toolrec/internal/logging"
	"github.com/tomtom215/toolrec/internal/metrics"
	"github.com/tomtom215/toolrec/internal/recommend"
	"github.com/tomtom215/toolrec/internal/supervisor"
	"github.com/tomtom215/toolrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Address()).
		Msg("Starting toolrec")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.Seed {
		seeded, err := db.SeedSampleData(context.Background())
		if err != nil {
			return err
		}
		logging.Info().Bool("seeded", seeded).Msg("Sample data check complete")
	}

	source := database.NewResilientSource(db, database.BreakerSettings{
		ConsecutiveFailures: cfg.Database.BreakerFailures,
		Timeout:             cfg.Database.BreakerTimeout,
		Interval:            cfg.Database.BreakerInterval,
	})

	holder := recommend.NewHolder(engineConfig(cfg), source, logging.WithComponent("recommend"),
		recommend.WithBuildObserver(observeBuild))

	// The service does not start without a first engine.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 5*time.Minute)
	err = holder.Rebuild(initCtx)
	cancelInit()
	if err != nil {
		return err
	}

	refresh := services.NewRefreshService(holder, services.RefreshServiceConfig{
		Interval:       cfg.Recommend.RefreshInterval,
		ReloadInterval: cfg.Recommend.ReloadInterval,
		ReloadBurst:    cfg.Recommend.ReloadBurst,
	}, logging.Logger())

	opts := []api.HandlerOption{api.WithRefresher(refresh)}
	if cfg.Recommend.CacheSize > 0 {
		opts = append(opts, api.WithResultCache(
			cache.NewLRU[string, api.CachedResult](cfg.Recommend.CacheSize, cfg.Recommend.CacheTTL)))
	}
	handler := api.NewHandler(holder, opts...)
	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(&cfg.Server)),
		cfg.Recommend.RequestTimeout)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}
	tree.AddDataService(refresh)
	tree.AddDataService(newUptimeService(time.Now()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

func engineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		TopN:       cfg.Recommend.TopN,
		Neighbors:  cfg.Recommend.Neighbors,
		BudgetTopK: cfg.Recommend.BudgetTopK,
	}
}

func observeBuild(stats recommend.Stats, duration time.Duration, err error) {
	metrics.RecordEngineBuild(metrics.EngineSize{
		Products:     stats.ProductsLoaded,
		Interactions: stats.InteractionsLoaded,
		Users:        stats.Users,
	}, duration, err)
}
