// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package feedback

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PurgeConfig controls the background rejection purge service.
type PurgeConfig struct {
	// Interval between purge sweeps.
	Interval time.Duration
	// TTL is how long a rejection record lives before it is eligible for
	// removal. Zero disables purging entirely.
	TTL time.Duration
}

// DefaultPurgeConfig returns the production defaults: daily sweeps,
// six-month rejection retention.
func DefaultPurgeConfig() PurgeConfig {
	return PurgeConfig{
		Interval: 24 * time.Hour,
		TTL:      4380 * time.Hour,
	}
}

// PurgeService periodically removes expired rejection records. It implements
// suture.Service and is restarted by the supervisor on failure.
type PurgeService struct {
	store  *Store
	cfg    PurgeConfig
	logger zerolog.Logger
}

// NewPurgeService creates a purge service for the given store.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewPurgeService(store *Store, cfg PurgeConfig, logger zerolog.Logger) *PurgeService {
	return &PurgeService{
		store:  store,
		cfg:    cfg,
		logger: logger.With().Str("component", "rejection-purge").Logger(),
	}
}

// Serve runs purge sweeps until the context is canceled.
func (p *PurgeService) Serve(ctx context.Context) error {
	if p.cfg.TTL <= 0 {
		p.logger.Info().Msg("rejection purge disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	p.logger.Info().
		Dur("interval", p.cfg.Interval).
		Dur("ttl", p.cfg.TTL).
		Msg("rejection purge service started")

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Run one sweep at startup so long downtimes don't accumulate rows.
	p.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *PurgeService) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-p.cfg.TTL)
	if _, err := p.store.PurgeExpiredRejections(ctx, cutoff); err != nil {
		p.logger.Error().Err(err).Msg("rejection purge sweep failed")
	}
}
