// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"context"
	"time"

	"github.com/tomtom215/giftwise/internal/catalog"
)

// Person is an immutable snapshot of the gift recipient, passed into the
// pipeline per call.
type Person struct {
	// ID is the person identifier used for feedback lookups.
	ID string `json:"id"`

	// Interests is the ordered list of interest strings.
	Interests []string `json:"interests"`

	// Dislikes is the ordered list of disliked strings. Categories whose
	// interest tags exactly match a dislike are excluded.
	Dislikes []string `json:"dislikes,omitempty"`

	// ArchetypeID is the optional pre-assigned archetype.
	ArchetypeID string `json:"archetype_id,omitempty"`
}

// RejectionReason classifies why a suggestion was rejected.
type RejectionReason int

const (
	// ReasonNotInterested indicates a generic lack of interest.
	ReasonNotInterested RejectionReason = iota
	// ReasonAlreadyOwns indicates the person already owns something similar.
	ReasonAlreadyOwns
	// ReasonTooExpensive indicates the category is out of budget.
	ReasonTooExpensive
	// ReasonDisliked indicates active dislike of the category.
	ReasonDisliked
	// ReasonOther covers everything else.
	ReasonOther
)

// String returns the canonical token for the rejection reason.
func (r RejectionReason) String() string {
	switch r {
	case ReasonNotInterested:
		return "NOT_INTERESTED"
	case ReasonAlreadyOwns:
		return "ALREADY_OWNS"
	case ReasonTooExpensive:
		return "TOO_EXPENSIVE"
	case ReasonDisliked:
		return "DISLIKED"
	default:
		return "OTHER"
	}
}

// ParseRejectionReason resolves a reason token. Unknown tokens map to
// ReasonOther.
func ParseRejectionReason(token string) RejectionReason {
	switch token {
	case "NOT_INTERESTED":
		return ReasonNotInterested
	case "ALREADY_OWNS":
		return ReasonAlreadyOwns
	case "TOO_EXPENSIVE":
		return ReasonTooExpensive
	case "DISLIKED":
		return ReasonDisliked
	default:
		return ReasonOther
	}
}

// Suggestion is one ranked gift recommendation.
type Suggestion struct {
	// Category is the matched gift category.
	Category catalog.GiftCategory `json:"category"`

	// MatchScore is the roughly-normalized ranking value. Unbounded above;
	// values over 1.0 are possible and allowed.
	MatchScore float64 `json:"match_score"`

	// MatchReasons are human-readable explanations for the match.
	MatchReasons []string `json:"match_reasons,omitempty"`

	// PriceDropPercent is the simulated discount for today, if any.
	PriceDropPercent *int `json:"price_drop_percent,omitempty"`

	// PremiumLocked is set by the caller's tier policy, never by the engine.
	PremiumLocked bool `json:"premium_locked,omitempty"`
}

// Request is one suggestion request.
type Request struct {
	// Person is the recipient snapshot.
	Person Person `json:"person"`

	// Style optionally filters scoring toward a style tag.
	Style *catalog.StyleTag `json:"style,omitempty"`

	// Budget optionally restricts candidates to one budget tier.
	Budget *catalog.BudgetRange `json:"budget,omitempty"`

	// Creativity blends deterministic relevance against pseudo-random
	// discovery, in [0,1]. Nil means the configured default (0.5).
	Creativity *float64 `json:"creativity,omitempty"`

	// MaxResults caps the returned list. Zero means the configured default.
	MaxResults int `json:"max_results,omitempty"`

	// RequestID is a unique identifier for tracing. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is an ordered suggestion list with diagnostics.
type Response struct {
	// Suggestions is ordered by MatchScore descending.
	Suggestions []Suggestion `json:"suggestions"`

	// TotalCandidates is the candidate count after exclusion and filtering.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// PersonID is the person the suggestions are for.
	PersonID string `json:"person_id"`

	// Creativity is the effective creativity level used.
	Creativity float64 `json:"creativity"`

	// LatencyMS is the total pipeline latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackStore is the collaborator holding purchase and rejection history.
// Implementations serialize writes; the engine does not retry I/O errors.
type FeedbackStore interface {
	// RecentlyPurchasedCategoryIDs returns ids of categories the person
	// purchased at or after since.
	RecentlyPurchasedCategoryIDs(ctx context.Context, personID string, since time.Time) ([]string, error)

	// RejectedCategoryIDs returns ids of categories with any rejection
	// record for the person.
	RejectedCategoryIDs(ctx context.Context, personID string) ([]string, error)

	// InsertRejection persists a rejection record.
	InsertRejection(ctx context.Context, personID, categoryID string, reason RejectionReason, at time.Time) error

	// ClearRejection removes the rejection record for the pair, if any.
	ClearRejection(ctx context.Context, personID, categoryID string) error
}
