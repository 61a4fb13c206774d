// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

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

	"github.com/skillbridge/recommender/internal/api"
	"github.com/skillbridge/recommender/internal/config"
	"github.com/skillbridge/recommender/internal/logging"
	"github.com/skillbridge/recommender/internal/metrics"
	"github.com/skillbridge/recommender/internal/recommend"
	"github.com/skillbridge/recommender/internal/recommend/model"
	"github.com/skillbridge/recommender/internal/supervisor"
)

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

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("models_dir", cfg.Models.Dir).
		Msg("Starting skillbridge-recommender")

	engine, err := buildEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build scoring engine")
	}

	handler := api.NewHandler(engine, cfg.API.MaxBodyBytes)
	router := api.NewRouter(handler, cfg.API)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildEngine assembles the scoring engine from configuration: model
// artifacts from disk, plus an optional career catalog override.
func buildEngine(cfg *config.Config) (*recommend.Engine, error) {
	engineCfg := recommend.DefaultConfig()
	engineCfg.DefaultTopN = cfg.Recommend.DefaultTopN
	engineCfg.MaxTopN = cfg.Recommend.MaxTopN
	engineCfg.MinCourseID = cfg.Recommend.MinCourseID

	engine, err := recommend.NewEngine(engineCfg, logging.WithComponent("engine"))
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	bundle, err := model.LoadBundle(cfg.Models.Dir)
	if err != nil {
		return nil, fmt.Errorf("load model bundle from %s: %w", cfg.Models.Dir, err)
	}
	if err := engine.SetModels(bundle.Regressor, bundle.Classifier, bundle.Schema, bundle.Info); err != nil {
		return nil, fmt.Errorf("configure models: %w", err)
	}
	metrics.RecordModelLoad()

	if cfg.Models.CareerCatalogPath != "" {
		careers, err := config.LoadCareerCatalog(cfg.Models.CareerCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load career catalog: %w", err)
		}
		engine.SetCareerCatalog(recommend.NewCareerCatalog(careers))
		logging.Info().
			Str("path", cfg.Models.CareerCatalogPath).
			Int("careers", len(careers)).
			Msg("Career catalog loaded from file")
	}

	return engine, nil
}
