// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package main is the Giftwise server entry point.
//
// Giftwise suggests gift categories for a recipient based on their
// interests, disliked topics, and feedback history. The server initializes
// components in order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, YAML file, env)
//  2. Logging: global zerolog logger
//  3. Feedback store: DuckDB-backed purchase and rejection history
//  4. Catalog: embedded gift category and archetype data
//  5. Engine: scoring, exclusion, and ranking pipeline
//  6. Supervisor: suture tree running the HTTP server and purge service
//
// Configuration is overridable with GIFTWISE_-prefixed environment
// variables, e.g. GIFTWISE_SERVER_PORT=8317 or GIFTWISE_DATABASE_PATH.
//
// The server shuts down gracefully on SIGINT and SIGTERM: the listener
// stops accepting connections, in-flight requests get the configured
// drain window, then the feedback store closes.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/giftwise/internal/api"
	"github.com/tomtom215/giftwise/internal/catalog"
	"github.com/tomtom215/giftwise/internal/config"
	"github.com/tomtom215/giftwise/internal/feedback"
	"github.com/tomtom215/giftwise/internal/logging"
	"github.com/tomtom215/giftwise/internal/suggest"
	"github.com/tomtom215/giftwise/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()
	logger.Info().
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Database.Path).
		Msg("starting giftwise")

	store, err := feedback.Open(feedback.Config{Path: cfg.Database.Path}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("feedback store close failed")
		}
	}()

	cat := catalog.NewStore(logger)

	engine, err := suggest.NewEngine(cat, store, &suggest.Config{
		DefaultCreativity: cfg.Suggest.DefaultCreativity,
		DefaultMaxResults: cfg.Suggest.DefaultMaxResults,
		MaxResultsLimit:   cfg.Suggest.MaxMaxResults,
		RandomGiftPool:    50,
		PurchaseLookback:  time.Duration(cfg.Suggest.LookbackDays) * 24 * time.Hour,
		Seed:              cfg.Suggest.Seed,
	}, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewServer(engine, cat, cfg.API, logger).Routes(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	supCfg := supervisor.DefaultConfig()
	supCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree := supervisor.New("giftwise", supCfg, logger)
	tree.Add(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout, logger))
	tree.Add(feedback.NewPurgeService(store, feedback.PurgeConfig{
		Interval: cfg.Suggest.PurgeInterval,
		TTL:      cfg.Suggest.RejectionTTL,
	}, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = <-tree.ServeBackground(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info().Msg("giftwise stopped")
	return nil
}
