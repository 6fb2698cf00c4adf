// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package supervisor runs the long-lived services (HTTP server, rejection
// purge) under a suture v4 supervisor so a crashing service is restarted
// with backoff instead of taking the process down.
package supervisor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// Config holds the restart policy for the supervised services.
type Config struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultConfig mirrors suture's production defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree is a single-level supervisor for the application's services.
type Tree struct {
	root   *suture.Supervisor
	logger zerolog.Logger
}

// New creates a supervisor tree with suture events routed to zerolog.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func New(name string, cfg Config, logger zerolog.Logger) *Tree {
	l := logger.With().Str("component", "supervisor").Logger()

	root := suture.New(name, suture.Spec{
		EventHook:        eventHook(l),
		FailureThreshold: cfg.FailureThreshold,
		FailureDecay:     cfg.FailureDecay,
		FailureBackoff:   cfg.FailureBackoff,
		Timeout:          cfg.ShutdownTimeout,
	})
	return &Tree{root: root, logger: l}
}

// Add registers a service with the tree.
func (t *Tree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Serve runs the tree until the context is canceled.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground starts the tree in a goroutine and returns the channel
// that receives the terminal error.
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// eventHook translates suture lifecycle events into structured log lines.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func eventHook(logger zerolog.Logger) suture.EventHook {
	return func(ev suture.Event) {
		switch ev.Type() {
		case suture.EventTypeServicePanic, suture.EventTypeStopTimeout:
			logger.Error().Fields(ev.Map()).Msg(ev.String())
		case suture.EventTypeServiceTerminate, suture.EventTypeBackoff:
			logger.Warn().Fields(ev.Map()).Msg(ev.String())
		default:
			logger.Info().Fields(ev.Map()).Msg(ev.String())
		}
	}
}
