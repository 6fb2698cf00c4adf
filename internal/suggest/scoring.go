// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"strings"

	"github.com/tomtom215/giftwise/internal/catalog"
)

// Score weights. Interest overlap dominates; style and budget are nudges.
const (
	interestMatchPoints = 10
	styleExactPoints    = 30
	stylePartialPoints  = 10
	budgetMatchPoints   = 20
)

// MatchScore computes the relevance score for one category against a
// person's interests and optional style/budget filters.
//
// Each category interest tag that case-insensitively equals, contains, or is
// contained by any person interest adds 10. An exact style match adds 30; a
// style filter against a category with styles but no exact match adds 10
// partial credit. An exact budget match adds 20.
//
// Pure and total: no side effects, never fails, unbounded above.
func MatchScore(c *catalog.GiftCategory, interests []string, style *catalog.StyleTag, budget *catalog.BudgetRange) int {
	score := interestMatchPoints * overlappingTagCount(c.InterestTags, interests)

	if style != nil {
		if hasStyleTag(c.StyleTags, *style) {
			score += styleExactPoints
		} else if len(c.StyleTags) > 0 {
			score += stylePartialPoints
		}
	}

	if budget != nil && *budget == c.Budget {
		score += budgetMatchPoints
	}

	return score
}

// tagsOverlap reports bidirectional case-insensitive substring containment.
// Short tokens can over-match longer unrelated words; that looseness is part
// of the matching contract and is relied on by callers.
func tagsOverlap(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// overlappingTagCount counts tags that overlap any of the interests.
func overlappingTagCount(tags, interests []string) int {
	count := 0
	for _, tag := range tags {
		for _, interest := range interests {
			if tagsOverlap(tag, interest) {
				count++
				break
			}
		}
	}
	return count
}

// containingTagCount counts tags that case-insensitively contain any of the
// interests. Used for the creativity-weighted interest bonus, which is
// deliberately stricter than the base overlap.
func containingTagCount(tags, interests []string) int {
	count := 0
	for _, tag := range tags {
		lowTag := strings.ToLower(tag)
		for _, interest := range interests {
			if strings.Contains(lowTag, strings.ToLower(interest)) {
				count++
				break
			}
		}
	}
	return count
}

// matchedInterests returns the person interests that overlap any category
// tag, in person order, for use in match reasons.
func matchedInterests(tags, interests []string) []string {
	var matched []string
	for _, interest := range interests {
		for _, tag := range tags {
			if tagsOverlap(tag, interest) {
				matched = append(matched, interest)
				break
			}
		}
	}
	return matched
}

// hasStyleTag reports whether tags contains style.
func hasStyleTag(tags []catalog.StyleTag, style catalog.StyleTag) bool {
	for _, t := range tags {
		if t == style {
			return true
		}
	}
	return false
}
