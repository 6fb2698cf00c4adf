// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

// fallbackCategories returns the minimal category list used when the embedded
// catalog cannot be parsed. Kept intentionally tiny; its only job is to keep
// the service answering.
func fallbackCategories() []GiftCategory {
	return []GiftCategory{
		{
			ID:           "gift_card",
			Title:        "Gift Card",
			Description:  "A gift card they can spend on anything",
			Emoji:        "💳",
			InterestTags: []string{"shopping"},
			StyleTags:    []StyleTag{StylePractical},
			Budget:       BudgetMedium,
			Seasons:      []Season{SeasonAll},
			Store:        StoreAmazon,
			SearchQuery:  "gift card",
		},
		{
			ID:           "book_bestseller",
			Title:        "Bestselling Book",
			Description:  "A current bestseller for any reader",
			Emoji:        "📚",
			InterestTags: []string{"reading", "books"},
			StyleTags:    []StyleTag{StyleCozy},
			Budget:       BudgetLow,
			Seasons:      []Season{SeasonAll},
			Store:        StoreAmazon,
			SearchQuery:  "bestselling books",
		},
	}
}

// fallbackArchetypes returns the minimal archetype list used when the
// embedded archetype document cannot be parsed.
func fallbackArchetypes() []Archetype {
	return []Archetype{
		{
			ID:               "bookworm",
			Title:            "Bookworm",
			Emoji:            "📖",
			Description:      "Loves reading and quiet evenings",
			DefaultInterests: []string{"reading", "books", "literature"},
			SuggestedStyles:  []StyleTag{StyleCozy, StyleMinimalist},
			Group:            GroupIntellectual,
		},
	}
}
