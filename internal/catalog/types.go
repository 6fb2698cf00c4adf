// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

// Season is a coarse three-month bucket used to gate category appropriateness.
type Season int

const (
	// SeasonAll is the sentinel meaning "appropriate year-round".
	SeasonAll Season = iota
	// SeasonSpring covers March through May.
	SeasonSpring
	// SeasonSummer covers June through August.
	SeasonSummer
	// SeasonFall covers September through November.
	SeasonFall
	// SeasonWinter covers December through February.
	SeasonWinter
)

// String returns the canonical token for the season.
func (s Season) String() string {
	switch s {
	case SeasonAll:
		return "ALL"
	case SeasonSpring:
		return "SPRING"
	case SeasonSummer:
		return "SUMMER"
	case SeasonFall:
		return "FALL"
	case SeasonWinter:
		return "WINTER"
	default:
		return "unknown"
	}
}

// BudgetRange is an enumerated price tier a category is tagged with.
type BudgetRange int

const (
	// BudgetLow is for small, inexpensive gifts.
	BudgetLow BudgetRange = iota
	// BudgetMedium is the default mid-range tier.
	BudgetMedium
	// BudgetHigh is for premium gifts.
	BudgetHigh
	// BudgetLuxury is for high-end gifts.
	BudgetLuxury
)

// String returns the canonical token for the budget range.
func (b BudgetRange) String() string {
	switch b {
	case BudgetLow:
		return "LOW"
	case BudgetMedium:
		return "MEDIUM"
	case BudgetHigh:
		return "HIGH"
	case BudgetLuxury:
		return "LUXURY"
	default:
		return "unknown"
	}
}

// StyleTag classifies the character of a gift category.
type StyleTag int

const (
	// StylePractical marks useful, everyday gifts.
	StylePractical StyleTag = iota
	// StyleCreative marks artistic and craft-oriented gifts.
	StyleCreative
	// StyleTech marks gadgets and electronics.
	StyleTech
	// StyleCozy marks comfort-oriented gifts.
	StyleCozy
	// StyleAdventurous marks outdoor and experience gifts.
	StyleAdventurous
	// StyleElegant marks refined, classic gifts.
	StyleElegant
	// StyleFun marks playful gifts.
	StyleFun
	// StyleMinimalist marks simple, understated gifts.
	StyleMinimalist
)

// String returns the canonical token for the style tag.
func (t StyleTag) String() string {
	switch t {
	case StylePractical:
		return "PRACTICAL"
	case StyleCreative:
		return "CREATIVE"
	case StyleTech:
		return "TECH"
	case StyleCozy:
		return "COZY"
	case StyleAdventurous:
		return "ADVENTUROUS"
	case StyleElegant:
		return "ELEGANT"
	case StyleFun:
		return "FUN"
	case StyleMinimalist:
		return "MINIMALIST"
	default:
		return "unknown"
	}
}

// StoreType identifies the external shop a category links to.
type StoreType int

const (
	// StoreAmazon is the default store.
	StoreAmazon StoreType = iota
	// StoreEtsy links to Etsy search.
	StoreEtsy
	// StoreEbay links to eBay search.
	StoreEbay
)

// String returns the canonical token for the store type.
func (s StoreType) String() string {
	switch s {
	case StoreAmazon:
		return "AMAZON"
	case StoreEtsy:
		return "ETSY"
	case StoreEbay:
		return "EBAY"
	default:
		return "unknown"
	}
}

// ArchetypeGroup groups archetype templates for presentation.
type ArchetypeGroup int

const (
	// GroupHobby groups archetypes defined by a hobby.
	GroupHobby ArchetypeGroup = iota
	// GroupCreative groups artistically inclined archetypes.
	GroupCreative
	// GroupActive groups outdoor and fitness archetypes.
	GroupActive
	// GroupIntellectual groups learning-oriented archetypes.
	GroupIntellectual
	// GroupLifestyle groups home and lifestyle archetypes.
	GroupLifestyle
)

// String returns the canonical token for the archetype group.
func (g ArchetypeGroup) String() string {
	switch g {
	case GroupHobby:
		return "HOBBY"
	case GroupCreative:
		return "CREATIVE"
	case GroupActive:
		return "ACTIVE"
	case GroupIntellectual:
		return "INTELLECTUAL"
	case GroupLifestyle:
		return "LIFESTYLE"
	default:
		return "unknown"
	}
}

// GiftCategory is one entry in the static gift catalog.
type GiftCategory struct {
	// ID is the unique category identifier.
	ID string `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Description is a short human-readable description.
	Description string `json:"description"`

	// Emoji is the display emoji.
	Emoji string `json:"emoji"`

	// InterestTags are free-form tags matched against person interests.
	InterestTags []string `json:"interest_tags"`

	// StyleTags classify the character of the category.
	StyleTags []StyleTag `json:"style_tags"`

	// Budget is the price tier of the category.
	Budget BudgetRange `json:"budget"`

	// Seasons are the calendar buckets the category is appropriate for.
	// Never empty; contains SeasonAll for year-round categories.
	Seasons []Season `json:"seasons"`

	// Store is the external shop used to build the shopping URL.
	Store StoreType `json:"store"`

	// SearchQuery is the query appended to the store's search URL.
	SearchQuery string `json:"search_query"`

	// ImageURL is an optional illustration URL.
	ImageURL string `json:"image_url,omitempty"`
}

// InSeasonSet reports whether the category's season set contains s or the
// SeasonAll sentinel.
func (c *GiftCategory) InSeasonSet(s Season) bool {
	for _, cs := range c.Seasons {
		if cs == SeasonAll || cs == s {
			return true
		}
	}
	return false
}

// Archetype is a named template of default interests and styles used to
// quick-profile a person.
type Archetype struct {
	// ID is the unique archetype identifier.
	ID string `json:"id"`

	// Title is the display name (e.g. "Gamer").
	Title string `json:"title"`

	// Emoji is the display emoji.
	Emoji string `json:"emoji"`

	// Description is a short human-readable description.
	Description string `json:"description"`

	// DefaultInterests seed the interest list for matching.
	DefaultInterests []string `json:"default_interests"`

	// SuggestedStyles are the styles typically fitting this archetype.
	SuggestedStyles []StyleTag `json:"suggested_styles"`

	// Group is the presentation grouping.
	Group ArchetypeGroup `json:"group"`
}
