// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import "strings"

// mysteriousLabel is returned for a person with no interests at all.
const mysteriousLabel = "Mysterious Soul"

// personaKeywordGroup pairs an adjective with the interest keywords that
// trigger it. Groups are tested in order; the first hit wins.
type personaKeywordGroup struct {
	adjective string
	keywords  []string
}

// personaGroups is the fixed priority order: tech, creative, outdoor,
// intellectual, lifestyle.
var personaGroups = []personaKeywordGroup{
	{"Tech-Savvy", []string{"tech", "gaming", "computer", "gadget", "coding", "software"}},
	{"Creative", []string{"art", "music", "craft", "design", "writing", "photography", "paint"}},
	{"Adventurous", []string{"hiking", "camping", "travel", "climbing", "outdoor", "nature"}},
	{"Intellectual", []string{"reading", "book", "science", "history", "learning", "chess"}},
	{"Stylish", []string{"cooking", "wine", "coffee", "fashion", "garden", "home"}},
}

// Interest-count fallbacks when no keyword group matches.
const (
	multifacetedThreshold = 5
	curiousThreshold      = 3
)

// PersonaSummary derives a short descriptive label for a person from their
// interests and, when one can be matched, their dominant archetype:
// "The <adjective> <archetype title>" or "The <adjective> Enthusiast".
func (e *Engine) PersonaSummary(person *Person) string {
	if len(person.Interests) == 0 {
		return mysteriousLabel
	}

	adjective := personaAdjective(person.Interests)

	if arch := e.DominantArchetype(person); arch != nil {
		return "The " + adjective + " " + arch.Title
	}
	return "The " + adjective + " Enthusiast"
}

// personaAdjective picks the adjective from the first keyword group any
// interest contains, falling back to interest-count thresholds.
func personaAdjective(interests []string) string {
	for _, group := range personaGroups {
		for _, interest := range interests {
			low := strings.ToLower(interest)
			for _, kw := range group.keywords {
				if strings.Contains(low, kw) {
					return group.adjective
				}
			}
		}
	}

	switch {
	case len(interests) > multifacetedThreshold:
		return "Multifaceted"
	case len(interests) > curiousThreshold:
		return "Curious"
	default:
		return "Thoughtful"
	}
}
