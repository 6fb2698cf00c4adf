// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/giftwise/internal/catalog"
	"github.com/tomtom215/giftwise/internal/metrics"
)

// scoreNormalizer converts the raw blended score into the exposed
// MatchScore. The result is roughly normalized, not bounded.
const scoreNormalizer = 150.0

// Engine runs the suggestion pipeline. It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	catalog  *catalog.Store
	feedback FeedbackStore

	// now is the injectable clock. Defaults to time.Now.
	now func() time.Time

	// rng picks random gifts and request ids (protected by rngMu).
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine creates a suggestion engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(cat *catalog.Store, feedback FeedbackStore, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback store is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "suggest").Logger(),
		catalog:  cat,
		feedback: feedback,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for gift picking
	}, nil
}

// SetClock replaces the engine clock. For tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Suggestions generates a ranked, creativity-blended, size-limited list of
// gift suggestions for the request's person and filters.
//
// The only propagated failures are feedback store errors; scoring and
// filtering are total.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Suggestions(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	req = e.prepareRequest(req)

	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("person_id", req.Person.ID).
		Logger()
	logger.Debug().Msg("processing suggestion request")

	exclude, err := e.exclusionSet(ctx, &req.Person)
	if err != nil {
		metrics.SuggestionRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("build exclusion set: %w", err)
	}

	creativity := e.effectiveCreativity(req.Creativity)
	now := e.now()
	suggestions := e.scoreCandidates(&req, exclude, creativity, now)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	total := len(suggestions)
	if len(suggestions) > req.MaxResults {
		suggestions = suggestions[:req.MaxResults]
	}

	outcome := "ok"
	if total == 0 {
		outcome = "empty"
	}
	metrics.SuggestionRequests.WithLabelValues(outcome).Inc()
	metrics.SuggestionDuration.Observe(time.Since(start).Seconds())
	metrics.SuggestionCandidates.Observe(float64(total))

	resp := &Response{
		Suggestions:     suggestions,
		TotalCandidates: total,
		Metadata: ResponseMetadata{
			RequestID:  req.RequestID,
			PersonID:   req.Person.ID,
			Creativity: creativity,
			LatencyMS:  time.Since(start).Milliseconds(),
			Timestamp:  now,
		},
	}

	logger.Debug().
		Int("candidates", total).
		Int("returned", len(suggestions)).
		Float64("creativity", creativity).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("suggestion request complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request id if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = e.generateRequestID()
	}
	if req.MaxResults <= 0 {
		req.MaxResults = e.config.DefaultMaxResults
	}
	if req.MaxResults > e.config.MaxResultsLimit {
		req.MaxResults = e.config.MaxResultsLimit
	}
	return req
}

// effectiveCreativity resolves the creativity level, clamped to [0,1].
func (e *Engine) effectiveCreativity(c *float64) float64 {
	if c == nil {
		return e.config.DefaultCreativity
	}
	switch {
	case *c < 0:
		return 0
	case *c > 1:
		return 1
	default:
		return *c
	}
}

// scoreCandidates filters the catalog against the exclusion set, season, and
// budget, then scores each surviving category.
func (e *Engine) scoreCandidates(req *Request, exclude map[string]struct{}, creativity float64, now time.Time) []Suggestion {
	season := catalog.SeasonAt(now)
	multiplier := interestMultiplier(creativity)

	categories := e.catalog.Categories()
	suggestions := make([]Suggestion, 0, len(categories))
	for i := range categories {
		c := &categories[i]

		if _, excluded := exclude[c.ID]; excluded {
			continue
		}
		if !c.InSeasonSet(season) {
			continue
		}
		if req.Budget != nil && c.Budget != *req.Budget {
			continue
		}

		suggestions = append(suggestions, e.scoreCategory(c, req, creativity, multiplier, now))
	}
	return suggestions
}

// scoreCategory blends the base relevance score with the creativity spark
// and the interest bonus for one candidate.
func (e *Engine) scoreCategory(c *catalog.GiftCategory, req *Request, creativity, multiplier float64, now time.Time) Suggestion {
	base := MatchScore(c, req.Person.Interests, req.Style, req.Budget)
	interestCount := containingTagCount(c.InterestTags, req.Person.Interests)

	spark := 0
	if creativity > sparkThreshold {
		spark = randomSpark(c.ID, now)
	}

	final := float64(base)*(1-creativity) +
		float64(spark) +
		float64(interestCount)*multiplier

	return Suggestion{
		Category:         *c,
		MatchScore:       final / scoreNormalizer,
		MatchReasons:     matchReasons(c, &req.Person, req.Style),
		PriceDropPercent: priceDrop(c.ID, now),
	}
}

// interestMultiplier scales the interest bonus inversely with creativity,
// clamped to [5, 15]: low creativity leans harder on stated interests.
func interestMultiplier(creativity float64) float64 {
	m := 10 * (1.5 - creativity)
	switch {
	case m < 5:
		return 5
	case m > 15:
		return 15
	default:
		return m
	}
}

// matchReasons builds the human-readable explanations for a suggestion.
func matchReasons(c *catalog.GiftCategory, person *Person, style *catalog.StyleTag) []string {
	var reasons []string

	if matched := matchedInterests(c.InterestTags, person.Interests); len(matched) > 0 {
		reasons = append(reasons, "Matches interests: "+strings.Join(matched, ", "))
	}
	if style != nil && hasStyleTag(c.StyleTags, *style) {
		reasons = append(reasons, "Matches style: "+style.String())
	}
	return reasons
}

// RandomGift returns a uniformly random pick from the top suggestion pool,
// or nil if no candidates survive filtering.
func (e *Engine) RandomGift(ctx context.Context, person Person, style *catalog.StyleTag, budget *catalog.BudgetRange) (*Suggestion, error) {
	resp, err := e.Suggestions(ctx, Request{
		Person:     person,
		Style:      style,
		Budget:     budget,
		MaxResults: e.config.RandomGiftPool,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Suggestions) == 0 {
		return nil, nil
	}

	e.rngMu.Lock()
	idx := e.rng.Intn(len(resp.Suggestions))
	e.rngMu.Unlock()

	return &resp.Suggestions[idx], nil
}

// Reject records an explicit rejection so the category is suppressed from
// future suggestions for this person.
func (e *Engine) Reject(ctx context.Context, personID, categoryID string, reason RejectionReason) error {
	start := time.Now()
	err := e.feedback.InsertRejection(ctx, personID, categoryID, reason, e.now())
	metrics.ObserveFeedbackQuery("insert", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("insert rejection: %w", err)
	}

	e.logger.Debug().
		Str("person_id", personID).
		Str("category_id", categoryID).
		Str("reason", reason.String()).
		Msg("suggestion rejected")
	return nil
}

// ClearRejection removes a rejection, letting the category surface again.
func (e *Engine) ClearRejection(ctx context.Context, personID, categoryID string) error {
	start := time.Now()
	err := e.feedback.ClearRejection(ctx, personID, categoryID)
	metrics.ObserveFeedbackQuery("clear", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("clear rejection: %w", err)
	}

	e.logger.Debug().
		Str("person_id", personID).
		Str("category_id", categoryID).
		Msg("rejection cleared")
	return nil
}

// generateRequestID generates a unique request id for tracing.
func (e *Engine) generateRequestID() string {
	e.rngMu.Lock()
	n := e.rng.Intn(10000)
	e.rngMu.Unlock()
	return fmt.Sprintf("sug-%d-%d", time.Now().UnixNano(), n)
}
