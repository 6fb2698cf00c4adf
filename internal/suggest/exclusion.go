// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/giftwise/internal/metrics"
)

// exclusionSet computes the ids to omit from the candidate set: categories
// purchased within the lookback window, categories with any rejection record,
// and categories whose interest tags exactly match a disliked string.
//
// Feedback reads complete before any scoring starts, so the pipeline never
// scores against a stale exclusion set.
func (e *Engine) exclusionSet(ctx context.Context, person *Person) (map[string]struct{}, error) {
	exclude := make(map[string]struct{})

	since := e.now().Add(-e.config.PurchaseLookback)

	start := time.Now()
	purchased, err := e.feedback.RecentlyPurchasedCategoryIDs(ctx, person.ID, since)
	metrics.ObserveFeedbackQuery("purchases", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("get purchased categories: %w", err)
	}
	for _, id := range purchased {
		exclude[id] = struct{}{}
	}

	start = time.Now()
	rejected, err := e.feedback.RejectedCategoryIDs(ctx, person.ID)
	metrics.ObserveFeedbackQuery("rejections", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("get rejected categories: %w", err)
	}
	for _, id := range rejected {
		exclude[id] = struct{}{}
	}

	for _, id := range e.dislikedCategoryIDs(person) {
		exclude[id] = struct{}{}
	}

	return exclude, nil
}

// dislikedCategoryIDs returns ids of catalog categories with an interest tag
// exactly (case-insensitively) matching one of the person's dislikes.
// Computed locally; dislikes are part of the person snapshot, not feedback.
func (e *Engine) dislikedCategoryIDs(person *Person) []string {
	if len(person.Dislikes) == 0 {
		return nil
	}

	disliked := make(map[string]struct{}, len(person.Dislikes))
	for _, d := range person.Dislikes {
		disliked[strings.ToLower(d)] = struct{}{}
	}

	var ids []string
	categories := e.catalog.Categories()
	for i := range categories {
		c := &categories[i]
		for _, tag := range c.InterestTags {
			if _, ok := disliked[strings.ToLower(tag)]; ok {
				ids = append(ids, c.ID)
				break
			}
		}
	}
	return ids
}
