// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import (
	_ "embed"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/giftwise/internal/metrics"
)

//go:embed data/categories.json
var categoryData []byte

//go:embed data/archetypes.json
var archetypeData []byte

// Store loads and caches the static gift catalog.
//
// The catalog is parsed once per process on first access. Parse failures are
// recovered with a hard-coded fallback list and never propagated; a degraded
// catalog is preferable to a failed request.
type Store struct {
	logger zerolog.Logger

	once       sync.Once
	categories []GiftCategory
	archetypes []Archetype
	byID       map[string]*GiftCategory
}

// NewStore creates a catalog store. Loading is deferred to first access.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Categories returns the cached category list. The returned slice is shared
// and must be treated as read-only.
func (s *Store) Categories() []GiftCategory {
	s.once.Do(s.load)
	return s.categories
}

// Archetypes returns the cached archetype list. The returned slice is shared
// and must be treated as read-only.
func (s *Store) Archetypes() []Archetype {
	s.once.Do(s.load)
	return s.archetypes
}

// Category returns the category with the given id, or nil if absent.
func (s *Store) Category(id string) *GiftCategory {
	s.once.Do(s.load)
	return s.byID[id]
}

// load parses the embedded catalog documents. Runs exactly once.
func (s *Store) load() {
	s.loadFrom(categoryData, archetypeData)
}

// loadFrom parses the given documents, falling back per document on error.
func (s *Store) loadFrom(categoryDoc, archetypeDoc []byte) {
	categories, err := parseCategories(categoryDoc, s.logger)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog parse failed, using fallback categories")
		metrics.CatalogFallbacks.WithLabelValues("categories").Inc()
		categories = fallbackCategories()
	}

	archetypes, err := parseArchetypes(archetypeDoc, s.logger)
	if err != nil {
		s.logger.Error().Err(err).Msg("archetype parse failed, using fallback archetypes")
		metrics.CatalogFallbacks.WithLabelValues("archetypes").Inc()
		archetypes = fallbackArchetypes()
	}

	s.categories = categories
	s.archetypes = archetypes

	s.byID = make(map[string]*GiftCategory, len(categories))
	for i := range s.categories {
		s.byID[s.categories[i].ID] = &s.categories[i]
	}

	s.logger.Info().
		Int("categories", len(categories)).
		Int("archetypes", len(archetypes)).
		Msg("catalog loaded")
}
