// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"testing"
)

func TestDominantArchetypeGamer(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	// Overlap 2 with Gamer (gaming, esports); no other archetype comes close.
	arch := engine.DominantArchetype(&Person{Interests: []string{"gaming", "esports"}})
	if arch == nil {
		t.Fatal("expected an archetype")
	}
	if arch.ID != "gamer" {
		t.Errorf("archetype = %q, want gamer", arch.ID)
	}
}

func TestDominantArchetypeNoInterests(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	if arch := engine.DominantArchetype(&Person{}); arch != nil {
		t.Errorf("expected nil for empty interests, got %q", arch.ID)
	}
}

func TestDominantArchetypeZeroOverlap(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	arch := engine.DominantArchetype(&Person{Interests: []string{"numismatics", "falconry"}})
	if arch != nil {
		t.Errorf("expected nil for zero overlap, got %q", arch.ID)
	}
}

func TestDominantArchetypeTieBreaksToCatalogOrder(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	// "painting" overlaps Artist only; "reading" overlaps Bookworm only.
	// One each: the earlier catalog entry (artist) must win.
	arch := engine.DominantArchetype(&Person{Interests: []string{"painting", "reading"}})
	if arch == nil {
		t.Fatal("expected an archetype")
	}
	if arch.ID != "artist" {
		t.Errorf("tie broke to %q, want artist (catalog order)", arch.ID)
	}
}

func TestDominantArchetypeContainmentMatch(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	// "book" is contained by Bookworm's "books" tag.
	arch := engine.DominantArchetype(&Person{Interests: []string{"book"}})
	if arch == nil {
		t.Fatal("expected an archetype via substring containment")
	}
	if arch.ID != "bookworm" {
		t.Errorf("archetype = %q, want bookworm", arch.ID)
	}
}
