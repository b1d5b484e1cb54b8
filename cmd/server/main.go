// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/scorecast/docs" // Import generated swagger docs
	"github.com/tomtom215/scorecast/internal/api"
	"github.com/tomtom215/scorecast/internal/config"
	"github.com/tomtom215/scorecast/internal/database"
	"github.com/tomtom215/scorecast/internal/inference"
	"github.com/tomtom215/scorecast/internal/logging"
	"github.com/tomtom215/scorecast/internal/metrics"
	"github.com/tomtom215/scorecast/internal/predict"
	"github.com/tomtom215/scorecast/internal/supervisor"
	"github.com/tomtom215/scorecast/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "(devel)"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Scorecast with supervisor tree")

	// The model is loaded once and never reloaded; a bad artifact is fatal.
	model, err := inference.Load(cfg.Model.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("model_path", cfg.Model.Path).Msg("Failed to load model artifact")
	}
	info := model.Info()
	metrics.SetModelInfo(info.Name, info.Version, info.Type)
	logging.Info().
		Str("model", info.Name).
		Str("model_version", info.Version).
		Str("model_type", info.Type).
		Str("sha256", info.SHA256).
		Msg("Model loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	// Dataset store is optional; leave store as a nil interface when disabled
	// so the records endpoints report 503.
	var store api.RecordStore
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database)
		if err != nil {
			logging.Fatal().Err(err).Str("db_path", cfg.Database.Path).Msg("Failed to initialize database")
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing database")
			}
		}()
		store = db

		tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
		logging.Info().Str("db_path", cfg.Database.Path).Msg("Dataset store enabled")
	} else {
		logging.Info().Msg("Dataset store disabled (DATASET_ENABLED=false)")
	}

	handler := api.NewHandler(predict.NewService(model), store, cfg, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// errCh carries a single value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
