// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package api exposes the suggestion engine over HTTP using the Chi router.
// All responses share one JSON envelope; errors carry a structured
// {"error": {"code", "message"}} body.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/giftwise/internal/catalog"
	"github.com/tomtom215/giftwise/internal/config"
	"github.com/tomtom215/giftwise/internal/suggest"
)

// Server bundles the handlers' collaborators.
type Server struct {
	engine  *suggest.Engine
	catalog *catalog.Store
	cfg     config.APIConfig
	logger  zerolog.Logger
}

// NewServer creates the HTTP server facade.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewServer(engine *suggest.Engine, cat *catalog.Store, cfg config.APIConfig, logger zerolog.Logger) *Server {
	return &Server{
		engine:  engine,
		catalog: cat,
		cfg:     cfg,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// Routes builds the full route tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(s.cfg.CORSOrigins))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Metrics())

		r.Get("/health", s.Health)

		r.Group(func(r chi.Router) {
			r.Use(RateLimit(s.cfg.RateLimitRPM))

			r.Post("/suggestions", s.Suggestions)
			r.Post("/suggestions/random", s.RandomSuggestion)
			r.Post("/rejections", s.Reject)
			r.Delete("/rejections", s.ClearRejection)
			r.Post("/persona", s.Persona)
			r.Get("/categories", s.Categories)
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
