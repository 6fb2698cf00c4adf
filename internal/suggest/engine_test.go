// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/giftwise/internal/catalog"
)

// testNow is the pinned clock for engine tests: mid-July, summer.
var testNow = time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

type purchaseRecord struct {
	categoryID string
	at         time.Time
}

// mockFeedbackStore implements FeedbackStore for testing.
type mockFeedbackStore struct {
	mu         sync.Mutex
	purchases  map[string][]purchaseRecord
	rejections map[string]map[string]RejectionReason

	purchasesErr  error
	rejectionsErr error
	insertErr     error
	clearErr      error
}

func newMockFeedbackStore() *mockFeedbackStore {
	return &mockFeedbackStore{
		purchases:  make(map[string][]purchaseRecord),
		rejections: make(map[string]map[string]RejectionReason),
	}
}

func (m *mockFeedbackStore) RecentlyPurchasedCategoryIDs(_ context.Context, personID string, since time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.purchasesErr != nil {
		return nil, m.purchasesErr
	}
	var ids []string
	for _, p := range m.purchases[personID] {
		if !p.at.Before(since) {
			ids = append(ids, p.categoryID)
		}
	}
	return ids, nil
}

func (m *mockFeedbackStore) RejectedCategoryIDs(_ context.Context, personID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rejectionsErr != nil {
		return nil, m.rejectionsErr
	}
	var ids []string
	for id := range m.rejections[personID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockFeedbackStore) InsertRejection(_ context.Context, personID, categoryID string, reason RejectionReason, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.rejections[personID] == nil {
		m.rejections[personID] = make(map[string]RejectionReason)
	}
	m.rejections[personID][categoryID] = reason
	return nil
}

func (m *mockFeedbackStore) ClearRejection(_ context.Context, personID, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	delete(m.rejections[personID], categoryID)
	return nil
}

func newTestEngine(t *testing.T, fb FeedbackStore) *Engine {
	t.Helper()
	engine, err := NewEngine(catalog.NewStore(zerolog.Nop()), fb, DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.SetClock(func() time.Time { return testNow })
	return engine
}

func floatRef(f float64) *float64 { return &f }

func TestSuggestionsRanked(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	resp, err := engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"gaming", "technology"}},
		Creativity: floatRef(0),
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}

	for i := 1; i < len(resp.Suggestions); i++ {
		if resp.Suggestions[i].MatchScore > resp.Suggestions[i-1].MatchScore {
			t.Errorf("suggestions not sorted descending at index %d", i)
		}
	}

	// Gaming gear should outrank an unrelated category.
	if resp.Suggestions[0].Category.ID != "gaming_gear" && resp.Suggestions[0].Category.ID != "tech_gadgets" {
		t.Errorf("top suggestion = %q, want a gaming/tech category", resp.Suggestions[0].Category.ID)
	}
}

func TestSuggestionsBudgetFilter(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	resp, err := engine.Suggestions(context.Background(), Request{
		Person: Person{ID: "p1", Interests: []string{"technology"}},
		Budget: budgetRef(catalog.BudgetHigh),
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions in HIGH tier")
	}
	for _, s := range resp.Suggestions {
		if s.Category.Budget != catalog.BudgetHigh {
			t.Errorf("category %q has budget %v, want HIGH", s.Category.ID, s.Category.Budget)
		}
	}
}

func TestSuggestionsSeasonGate(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	// Clock pinned to July: winter-only categories must not appear,
	// summer categories may.
	resp, err := engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"fashion", "beach"}},
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}

	ids := suggestionIDs(resp)
	if ids["winter_accessories"] {
		t.Error("winter-only category suggested in July")
	}
	if !ids["beach_kit"] {
		t.Error("summer category missing in July")
	}

	// Same request in January flips both.
	engine.SetClock(func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	})
	resp, err = engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"fashion", "beach"}},
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	ids = suggestionIDs(resp)
	if !ids["winter_accessories"] {
		t.Error("winter category missing in January")
	}
	if ids["beach_kit"] {
		t.Error("summer-only category suggested in January")
	}
}

func TestSuggestionsRejectionSuppression(t *testing.T) {
	fb := newMockFeedbackStore()
	engine := newTestEngine(t, fb)
	ctx := context.Background()
	person := Person{ID: "p1", Interests: []string{"gaming"}}

	if err := engine.Reject(ctx, "p1", "gaming_gear", ReasonAlreadyOwns); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	resp, err := engine.Suggestions(ctx, Request{Person: person, MaxResults: 100})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if suggestionIDs(resp)["gaming_gear"] {
		t.Error("rejected category appeared in suggestions")
	}

	if err := engine.ClearRejection(ctx, "p1", "gaming_gear"); err != nil {
		t.Fatalf("ClearRejection: %v", err)
	}

	resp, err = engine.Suggestions(ctx, Request{Person: person, MaxResults: 100})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if !suggestionIDs(resp)["gaming_gear"] {
		t.Error("category still suppressed after clearing the rejection")
	}
}

func TestSuggestionsPurchaseLookbackWindow(t *testing.T) {
	fb := newMockFeedbackStore()
	engine := newTestEngine(t, fb)
	person := Person{ID: "p1", Interests: []string{"gaming"}}

	// A purchase just outside the 365-day window does not exclude.
	fb.purchases["p1"] = []purchaseRecord{{categoryID: "gaming_gear", at: testNow.AddDate(0, 0, -366)}}
	resp, err := engine.Suggestions(context.Background(), Request{Person: person, MaxResults: 100})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if !suggestionIDs(resp)["gaming_gear"] {
		t.Error("366-day-old purchase excluded its category")
	}

	// A purchase yesterday excludes.
	fb.purchases["p1"] = []purchaseRecord{{categoryID: "gaming_gear", at: testNow.AddDate(0, 0, -1)}}
	resp, err = engine.Suggestions(context.Background(), Request{Person: person, MaxResults: 100})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if suggestionIDs(resp)["gaming_gear"] {
		t.Error("yesterday's purchase did not exclude its category")
	}
}

func TestSuggestionsDislikeExclusion(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	resp, err := engine.Suggestions(context.Background(), Request{
		Person: Person{
			ID:        "p1",
			Interests: []string{"gaming"},
			Dislikes:  []string{"Technology"},
		},
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}

	ids := suggestionIDs(resp)
	// Both carry the exact interest tag "technology".
	if ids["tech_gadgets"] || ids["smart_watch"] {
		t.Error("disliked tag did not exclude its categories")
	}
	// Dislike matching is exact, so "gaming" tags are untouched.
	if !ids["gaming_gear"] {
		t.Error("unrelated category excluded by dislike")
	}
}

func TestSuggestionsZeroCreativityDeterministic(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())
	req := Request{
		Person:     Person{ID: "p1", Interests: []string{"gaming", "music", "cooking"}},
		Creativity: floatRef(0),
		RequestID:  "fixed",
	}

	first, err := engine.Suggestions(context.Background(), req)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	second, err := engine.Suggestions(context.Background(), req)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}

	if len(first.Suggestions) != len(second.Suggestions) {
		t.Fatalf("result sizes differ: %d vs %d", len(first.Suggestions), len(second.Suggestions))
	}
	for i := range first.Suggestions {
		a, b := first.Suggestions[i], second.Suggestions[i]
		if a.Category.ID != b.Category.ID || a.MatchScore != b.MatchScore {
			t.Errorf("index %d differs: %s/%f vs %s/%f", i, a.Category.ID, a.MatchScore, b.Category.ID, b.MatchScore)
		}
	}
}

func TestSuggestionsZeroCreativityExactScore(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	// tech_gadgets (tags technology/gadgets/electronics) overlaps the
	// interests on exactly one tag, so the base is 10. At creativity 0
	// the spark term is 0 and the interest multiplier clamps to 15:
	// final = 10*1 + 0 + 1*15 = 25.
	resp, err := engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"gaming", "technology"}},
		Creativity: floatRef(0),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	gadgets := suggestionByID(resp, "tech_gadgets")
	if gadgets == nil {
		t.Fatal("tech_gadgets not suggested")
	}
	if want := 25.0 / 150.0; gadgets.MatchScore != want {
		t.Errorf("MatchScore = %v, want %v", gadgets.MatchScore, want)
	}

	// Exact style (+30) and budget (+20) matches raise the base to 60:
	// final = 60 + 15 = 75, normalized to exactly 0.5.
	resp, err = engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"gaming", "technology"}},
		Style:      styleRef(catalog.StyleTech),
		Budget:     budgetRef(catalog.BudgetHigh),
		Creativity: floatRef(0),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	gadgets = suggestionByID(resp, "tech_gadgets")
	if gadgets == nil {
		t.Fatal("tech_gadgets not suggested with style and budget filters")
	}
	if gadgets.MatchScore != 0.5 {
		t.Errorf("MatchScore = %v, want 0.5", gadgets.MatchScore)
	}
}

func TestSuggestionsSparkOnlyAboveThreshold(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())
	interests := []string{"gaming", "technology"}

	// At exactly 0.7 the spark gate stays closed: every score must equal
	// the sparkless blend.
	creativity := 0.7
	resp, err := engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: interests},
		Creativity: floatRef(creativity),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	for _, s := range resp.Suggestions {
		base := MatchScore(&s.Category, interests, nil, nil)
		count := containingTagCount(s.Category.InterestTags, interests)
		want := (float64(base)*(1-creativity) + float64(count)*(10*(1.5-creativity))) / 150.0
		if s.MatchScore != want {
			t.Errorf("%s at creativity 0.7: MatchScore = %v, want sparkless %v", s.Category.ID, s.MatchScore, want)
		}
	}

	// Just above the threshold each score gains exactly the bucketed
	// spark for its category under the pinned clock.
	creativity = 0.71
	resp, err = engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: interests},
		Creativity: floatRef(creativity),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	for _, s := range resp.Suggestions {
		base := MatchScore(&s.Category, interests, nil, nil)
		count := containingTagCount(s.Category.InterestTags, interests)
		spark := randomSpark(s.Category.ID, testNow)
		want := (float64(base)*(1-creativity) + float64(spark) + float64(count)*(10*(1.5-creativity))) / 150.0
		if s.MatchScore != want {
			t.Errorf("%s at creativity 0.71: MatchScore = %v, want %v with spark %d", s.Category.ID, s.MatchScore, want, spark)
		}
	}
}

func TestSuggestionsMatchReasons(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	resp, err := engine.Suggestions(context.Background(), Request{
		Person:     Person{ID: "p1", Interests: []string{"gaming"}},
		Style:      styleRef(catalog.StyleTech),
		Creativity: floatRef(0),
		MaxResults: 100,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}

	var gear *Suggestion
	for i := range resp.Suggestions {
		if resp.Suggestions[i].Category.ID == "gaming_gear" {
			gear = &resp.Suggestions[i]
		}
	}
	if gear == nil {
		t.Fatal("gaming_gear not suggested")
	}

	if len(gear.MatchReasons) != 2 {
		t.Fatalf("MatchReasons = %v, want interest + style reasons", gear.MatchReasons)
	}
	if gear.MatchReasons[0] != "Matches interests: gaming" {
		t.Errorf("interest reason = %q", gear.MatchReasons[0])
	}
	if gear.MatchReasons[1] != "Matches style: TECH" {
		t.Errorf("style reason = %q", gear.MatchReasons[1])
	}
}

func TestSuggestionsMaxResults(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())
	person := Person{ID: "p1", Interests: []string{"gaming"}}

	resp, err := engine.Suggestions(context.Background(), Request{Person: person, MaxResults: 3})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(resp.Suggestions) > 3 {
		t.Errorf("returned %d suggestions, want at most 3", len(resp.Suggestions))
	}
	if resp.TotalCandidates < len(resp.Suggestions) {
		t.Errorf("TotalCandidates %d below returned count %d", resp.TotalCandidates, len(resp.Suggestions))
	}
}

func TestSuggestionsFeedbackErrorPropagates(t *testing.T) {
	fb := newMockFeedbackStore()
	fb.rejectionsErr = errors.New("store offline")
	engine := newTestEngine(t, fb)

	_, err := engine.Suggestions(context.Background(), Request{Person: Person{ID: "p1"}})
	if err == nil {
		t.Fatal("expected feedback store error to propagate")
	}
	if !errors.Is(err, fb.rejectionsErr) {
		t.Errorf("error chain lost the store error: %v", err)
	}
}

func TestRandomGiftDrawnFromPool(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())
	person := Person{ID: "p1", Interests: []string{"gaming", "music"}}

	poolResp, err := engine.Suggestions(context.Background(), Request{
		Person:     person,
		MaxResults: engine.config.RandomGiftPool,
	})
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	pool := suggestionIDs(poolResp)

	for i := 0; i < 20; i++ {
		gift, err := engine.RandomGift(context.Background(), person, nil, nil)
		if err != nil {
			t.Fatalf("RandomGift: %v", err)
		}
		if gift == nil {
			t.Fatal("expected a gift")
		}
		if !pool[gift.Category.ID] {
			t.Errorf("random gift %q outside the top suggestion pool", gift.Category.ID)
		}
	}
}

func TestRandomGiftEmptyReturnsNil(t *testing.T) {
	fb := newMockFeedbackStore()
	engine := newTestEngine(t, fb)

	// Reject every catalog category so nothing survives.
	for _, c := range catalog.NewStore(zerolog.Nop()).Categories() {
		if err := engine.Reject(context.Background(), "p1", c.ID, ReasonNotInterested); err != nil {
			t.Fatalf("Reject: %v", err)
		}
	}

	gift, err := engine.RandomGift(context.Background(), Person{ID: "p1"}, nil, nil)
	if err != nil {
		t.Fatalf("RandomGift: %v", err)
	}
	if gift != nil {
		t.Errorf("expected nil gift, got %q", gift.Category.ID)
	}
}

func TestNewEngineValidation(t *testing.T) {
	cat := catalog.NewStore(zerolog.Nop())
	fb := newMockFeedbackStore()

	if _, err := NewEngine(nil, fb, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil catalog")
	}
	if _, err := NewEngine(cat, nil, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil feedback store")
	}
	bad := DefaultConfig()
	bad.DefaultCreativity = 2
	if _, err := NewEngine(cat, fb, bad, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestSuggestionsConcurrent(t *testing.T) {
	engine := newTestEngine(t, newMockFeedbackStore())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Suggestions(context.Background(), Request{
				Person: Person{ID: "p1", Interests: []string{"gaming"}},
			})
			if err != nil {
				t.Errorf("Suggestions: %v", err)
			}
		}()
	}
	wg.Wait()
}

func suggestionByID(resp *Response, id string) *Suggestion {
	for i := range resp.Suggestions {
		if resp.Suggestions[i].Category.ID == id {
			return &resp.Suggestions[i]
		}
	}
	return nil
}

func suggestionIDs(resp *Response) map[string]bool {
	ids := make(map[string]bool, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		ids[s.Category.ID] = true
	}
	return ids
}
