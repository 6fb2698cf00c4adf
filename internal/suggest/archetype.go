// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import "github.com/tomtom215/giftwise/internal/catalog"

// DominantArchetype picks the archetype template whose default interests
// best overlap the person's interests.
//
// Ties break toward catalog order (first maximum wins). Returns nil for a
// person with no interests or when no archetype overlaps at all.
func (e *Engine) DominantArchetype(person *Person) *catalog.Archetype {
	if len(person.Interests) == 0 {
		return nil
	}

	archetypes := e.catalog.Archetypes()

	best := -1
	bestCount := 0
	for i := range archetypes {
		count := overlappingTagCount(archetypes[i].DefaultInterests, person.Interests)
		if count > bestCount {
			best = i
			bestCount = count
		}
	}

	if best < 0 {
		return nil
	}
	return &archetypes[best]
}
