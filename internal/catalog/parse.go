// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// rawCategory mirrors the JSON shape of one catalog entry before enum
// resolution. Enum fields are plain tokens so that unknown values can be
// handled by policy instead of failing the decode.
type rawCategory struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Interests   []string `json:"interestTags"`
	Styles      []string `json:"styleTags"`
	Budget      string   `json:"budgetRange"`
	Seasons     []string `json:"seasons"`
	Store       string   `json:"storeType"`
	SearchQuery string   `json:"searchQuery"`
	ImageURL    string   `json:"imageUrl"`
}

// rawArchetype mirrors the JSON shape of one archetype entry.
type rawArchetype struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Interests   []string `json:"defaultInterests"`
	Styles      []string `json:"suggestedStyles"`
	Group       string   `json:"category"`
}

type categoryDocument struct {
	Categories []rawCategory `json:"categories"`
}

type archetypeDocument struct {
	Archetypes []rawArchetype `json:"archetypes"`
}

// ParseStyleTag resolves a style token. Unknown tokens return ok=false and
// are dropped by the caller.
func ParseStyleTag(token string) (StyleTag, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "PRACTICAL":
		return StylePractical, true
	case "CREATIVE":
		return StyleCreative, true
	case "TECH":
		return StyleTech, true
	case "COZY":
		return StyleCozy, true
	case "ADVENTUROUS":
		return StyleAdventurous, true
	case "ELEGANT":
		return StyleElegant, true
	case "FUN":
		return StyleFun, true
	case "MINIMALIST":
		return StyleMinimalist, true
	default:
		return 0, false
	}
}

// ParseSeason resolves a season token. Unknown tokens return ok=false and
// are dropped by the caller.
func ParseSeason(token string) (Season, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "ALL":
		return SeasonAll, true
	case "SPRING":
		return SeasonSpring, true
	case "SUMMER":
		return SeasonSummer, true
	case "FALL", "AUTUMN":
		return SeasonFall, true
	case "WINTER":
		return SeasonWinter, true
	default:
		return 0, false
	}
}

// ParseBudgetRange resolves a budget token. Unknown tokens default to
// BudgetMedium.
func ParseBudgetRange(token string) BudgetRange {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "LOW":
		return BudgetLow
	case "MEDIUM":
		return BudgetMedium
	case "HIGH":
		return BudgetHigh
	case "LUXURY":
		return BudgetLuxury
	default:
		return BudgetMedium
	}
}

// ParseStoreType resolves a store token. Unknown tokens default to
// StoreAmazon.
func ParseStoreType(token string) StoreType {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "AMAZON":
		return StoreAmazon
	case "ETSY":
		return StoreEtsy
	case "EBAY":
		return StoreEbay
	default:
		return StoreAmazon
	}
}

// ParseArchetypeGroup resolves a group token. Unknown tokens default to
// GroupHobby.
func ParseArchetypeGroup(token string) ArchetypeGroup {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "HOBBY":
		return GroupHobby
	case "CREATIVE":
		return GroupCreative
	case "ACTIVE":
		return GroupActive
	case "INTELLECTUAL":
		return GroupIntellectual
	case "LIFESTYLE":
		return GroupLifestyle
	default:
		return GroupHobby
	}
}

// parseCategories decodes a category document and resolves its enums.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func parseCategories(data []byte, logger zerolog.Logger) ([]GiftCategory, error) {
	var doc categoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("categories document is empty")
	}

	out := make([]GiftCategory, 0, len(doc.Categories))
	for i := range doc.Categories {
		out = append(out, resolveCategory(&doc.Categories[i], logger))
	}
	return out, nil
}

// resolveCategory applies the enum leniency policy to one raw entry.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func resolveCategory(raw *rawCategory, logger zerolog.Logger) GiftCategory {
	cat := GiftCategory{
		ID:           raw.ID,
		Title:        raw.Title,
		Description:  raw.Description,
		Emoji:        raw.Emoji,
		InterestTags: append([]string(nil), raw.Interests...),
		Budget:       ParseBudgetRange(raw.Budget),
		Store:        ParseStoreType(raw.Store),
		SearchQuery:  raw.SearchQuery,
		ImageURL:     raw.ImageURL,
	}

	for _, token := range raw.Styles {
		tag, ok := ParseStyleTag(token)
		if !ok {
			logger.Debug().Str("category", raw.ID).Str("token", token).Msg("dropping unknown style token")
			continue
		}
		cat.StyleTags = append(cat.StyleTags, tag)
	}

	for _, token := range raw.Seasons {
		s, ok := ParseSeason(token)
		if !ok {
			logger.Debug().Str("category", raw.ID).Str("token", token).Msg("dropping unknown season token")
			continue
		}
		cat.Seasons = append(cat.Seasons, s)
	}
	// Season set invariant: never empty.
	if len(cat.Seasons) == 0 {
		cat.Seasons = []Season{SeasonAll}
	}

	return cat
}

// parseArchetypes decodes an archetype document and resolves its enums.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func parseArchetypes(data []byte, logger zerolog.Logger) ([]Archetype, error) {
	var doc archetypeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode archetypes: %w", err)
	}
	if len(doc.Archetypes) == 0 {
		return nil, fmt.Errorf("archetypes document is empty")
	}

	out := make([]Archetype, 0, len(doc.Archetypes))
	for i := range doc.Archetypes {
		raw := &doc.Archetypes[i]
		arch := Archetype{
			ID:               raw.ID,
			Title:            raw.Title,
			Emoji:            raw.Emoji,
			Description:      raw.Description,
			DefaultInterests: append([]string(nil), raw.Interests...),
			Group:            ParseArchetypeGroup(raw.Group),
		}
		for _, token := range raw.Styles {
			tag, ok := ParseStyleTag(token)
			if !ok {
				logger.Debug().Str("archetype", raw.ID).Str("token", token).Msg("dropping unknown style token")
				continue
			}
			arch.SuggestedStyles = append(arch.SuggestedStyles, tag)
		}
		out = append(out, arch)
	}
	return out, nil
}
