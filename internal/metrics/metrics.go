// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package metrics provides Prometheus instrumentation for Giftwise:
// suggestion request throughput and latency, feedback store operations,
// catalog health, and HTTP endpoint metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SuggestionRequests counts suggestion requests by outcome.
	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftwise_suggestion_requests_total",
			Help: "Total number of suggestion requests",
		},
		[]string{"outcome"}, // "ok", "error", "empty"
	)

	// SuggestionDuration observes end-to-end suggestion latency.
	SuggestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "giftwise_suggestion_duration_seconds",
			Help:    "Duration of suggestion pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SuggestionCandidates observes candidate set sizes after filtering.
	SuggestionCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "giftwise_suggestion_candidates",
			Help:    "Number of candidate categories after exclusion and season filtering",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// FeedbackOps counts feedback store operations by type and outcome.
	FeedbackOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftwise_feedback_operations_total",
			Help: "Total number of feedback store operations",
		},
		[]string{"operation", "outcome"}, // operation: "purchases", "rejections", "insert", "clear", "purge"
	)

	// FeedbackQueryDuration observes feedback store query latency.
	FeedbackQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "giftwise_feedback_query_duration_seconds",
			Help:    "Duration of feedback store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CatalogFallbacks counts catalog parse failures recovered with the
	// built-in fallback list.
	CatalogFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftwise_catalog_fallbacks_total",
			Help: "Total number of catalog loads that fell back to the built-in list",
		},
		[]string{"document"}, // "categories", "archetypes"
	)

	// RejectionsPurged counts rejection records removed by the purge service.
	RejectionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "giftwise_rejections_purged_total",
			Help: "Total number of expired rejection records purged",
		},
	)

	// HTTPRequestDuration observes HTTP request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "giftwise_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveHTTPRequest records a completed HTTP request.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// ObserveFeedbackQuery records a completed feedback store query.
func ObserveFeedbackQuery(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	FeedbackOps.WithLabelValues(operation, outcome).Inc()
	FeedbackQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
