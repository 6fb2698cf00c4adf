// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"fmt"
	"time"
)

// Config contains the operational parameters of the suggestion engine.
type Config struct {
	// DefaultCreativity is used when a request does not set one.
	DefaultCreativity float64 `json:"default_creativity"`

	// DefaultMaxResults is used when a request does not set MaxResults.
	DefaultMaxResults int `json:"default_max_results"`

	// MaxResultsLimit caps MaxResults regardless of the request.
	MaxResultsLimit int `json:"max_results_limit"`

	// RandomGiftPool is the suggestion pool size RandomGift draws from.
	RandomGiftPool int `json:"random_gift_pool"`

	// PurchaseLookback is the window in which a purchase excludes its
	// category from suggestions.
	PurchaseLookback time.Duration `json:"purchase_lookback"`

	// Seed seeds the random source used for RandomGift picks and request
	// IDs. Zero means a fixed default, keeping behavior reproducible.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultCreativity: 0.5,
		DefaultMaxResults: 20,
		MaxResultsLimit:   100,
		RandomGiftPool:    50,
		PurchaseLookback:  365 * 24 * time.Hour,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.DefaultCreativity < 0 || c.DefaultCreativity > 1 {
		return fmt.Errorf("default_creativity must be in [0,1], got %v", c.DefaultCreativity)
	}
	if c.DefaultMaxResults <= 0 {
		return fmt.Errorf("default_max_results must be positive, got %d", c.DefaultMaxResults)
	}
	if c.MaxResultsLimit < c.DefaultMaxResults {
		return fmt.Errorf("max_results_limit %d below default_max_results %d", c.MaxResultsLimit, c.DefaultMaxResults)
	}
	if c.RandomGiftPool <= 0 {
		return fmt.Errorf("random_gift_pool must be positive, got %d", c.RandomGiftPool)
	}
	if c.PurchaseLookback <= 0 {
		return fmt.Errorf("purchase_lookback must be positive, got %v", c.PurchaseLookback)
	}
	return nil
}
