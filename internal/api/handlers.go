// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package api

import (
	"net/http"

	"github.com/tomtom215/giftwise/internal/catalog"
	"github.com/tomtom215/giftwise/internal/suggest"
	"github.com/tomtom215/giftwise/internal/validation"
)

// personForm is the recipient snapshot as sent by clients.
type personForm struct {
	PersonID    string   `json:"person_id" validate:"required,min=1,max=128"`
	Interests   []string `json:"interests" validate:"max=50,dive,min=1,max=100"`
	Dislikes    []string `json:"dislikes" validate:"max=50,dive,min=1,max=100"`
	ArchetypeID string   `json:"archetype_id" validate:"omitempty,max=64"`
}

func (f *personForm) toPerson() suggest.Person {
	return suggest.Person{
		ID:          f.PersonID,
		Interests:   f.Interests,
		Dislikes:    f.Dislikes,
		ArchetypeID: f.ArchetypeID,
	}
}

type suggestionsForm struct {
	Person     personForm `json:"person" validate:"required"`
	Style      string     `json:"style" validate:"omitempty,styletag"`
	Budget     string     `json:"budget" validate:"omitempty,budgetrange"`
	Creativity *float64   `json:"creativity" validate:"omitempty,gte=0,lte=1"`
	MaxResults int        `json:"max_results" validate:"omitempty,min=1,max=100"`
}

type rejectionForm struct {
	PersonID   string `json:"person_id" validate:"required,min=1,max=128"`
	CategoryID string `json:"category_id" validate:"required,min=1,max=128"`
	Reason     string `json:"reason" validate:"required,rejectionreason"`
}

type personaForm struct {
	Person personForm `json:"person" validate:"required"`
}

// suggestionPayload decorates a suggestion with its store search URL.
type suggestionPayload struct {
	suggest.Suggestion
	StoreURL string `json:"store_url"`
}

// categoryPayload decorates a catalog entry with its store search URL.
type categoryPayload struct {
	catalog.GiftCategory
	StoreURL string `json:"store_url"`
}

func (f *suggestionsForm) styleFilter() *catalog.StyleTag {
	if f.Style == "" {
		return nil
	}
	tag, ok := catalog.ParseStyleTag(f.Style)
	if !ok {
		return nil
	}
	return &tag
}

func (f *suggestionsForm) budgetFilter() *catalog.BudgetRange {
	if f.Budget == "" {
		return nil
	}
	b := catalog.ParseBudgetRange(f.Budget)
	return &b
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"}, nil)
}

// Suggestions returns the ranked suggestion list for a person.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	var form suggestionsForm
	if err := decodeJSONBody(r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON", err)
		return
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	req := suggest.Request{
		Person:     form.Person.toPerson(),
		Style:      form.styleFilter(),
		Budget:     form.budgetFilter(),
		Creativity: form.Creativity,
		MaxResults: form.MaxResults,
		RequestID:  requestIDFromContext(r.Context()),
	}

	resp, err := s.engine.Suggestions(r.Context(), req)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "SUGGESTION_FAILED", "could not generate suggestions", err)
		return
	}

	payload := struct {
		Suggestions     []suggestionPayload      `json:"suggestions"`
		TotalCandidates int                      `json:"total_candidates"`
		Metadata        suggest.ResponseMetadata `json:"metadata"`
	}{
		Suggestions:     decorateSuggestions(resp.Suggestions),
		TotalCandidates: resp.TotalCandidates,
		Metadata:        resp.Metadata,
	}
	respondJSON(w, r, http.StatusOK, payload, nil)
}

// RandomSuggestion returns one gift drawn from the person's top matches.
func (s *Server) RandomSuggestion(w http.ResponseWriter, r *http.Request) {
	var form suggestionsForm
	if err := decodeJSONBody(r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON", err)
		return
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	pick, err := s.engine.RandomGift(r.Context(), form.Person.toPerson(), form.styleFilter(), form.budgetFilter())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "SUGGESTION_FAILED", "could not draw a random gift", err)
		return
	}
	if pick == nil {
		respondError(w, r, http.StatusNotFound, "NO_CANDIDATES", "no gift category matches this person", nil)
		return
	}

	payload := suggestionPayload{Suggestion: *pick, StoreURL: catalog.StoreURL(&pick.Category)}
	respondJSON(w, r, http.StatusOK, payload, nil)
}

// Reject records that a person turned down a category.
func (s *Server) Reject(w http.ResponseWriter, r *http.Request) {
	var form rejectionForm
	if err := decodeJSONBody(r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON", err)
		return
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	if s.catalog.Category(form.CategoryID) == nil {
		respondError(w, r, http.StatusNotFound, "CATEGORY_NOT_FOUND", "unknown gift category", nil)
		return
	}

	reason := suggest.ParseRejectionReason(form.Reason)
	if err := s.engine.Reject(r.Context(), form.PersonID, form.CategoryID, reason); err != nil {
		respondError(w, r, http.StatusInternalServerError, "REJECTION_FAILED", "could not record rejection", err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]string{
		"person_id":   form.PersonID,
		"category_id": form.CategoryID,
		"reason":      reason.String(),
	}, nil)
}

// ClearRejection removes a rejection so the category can be suggested again.
func (s *Server) ClearRejection(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	categoryID := r.URL.Query().Get("category_id")
	if personID == "" || categoryID == "" {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "person_id and category_id are required", nil)
		return
	}

	if err := s.engine.ClearRejection(r.Context(), personID, categoryID); err != nil {
		respondError(w, r, http.StatusInternalServerError, "REJECTION_FAILED", "could not clear rejection", err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{
		"person_id":   personID,
		"category_id": categoryID,
	}, nil)
}

// Persona returns the playful persona label and dominant archetype.
func (s *Server) Persona(w http.ResponseWriter, r *http.Request) {
	var form personaForm
	if err := decodeJSONBody(r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON", err)
		return
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	person := form.Person.toPerson()
	payload := struct {
		Summary   string             `json:"summary"`
		Archetype *catalog.Archetype `json:"archetype,omitempty"`
	}{
		Summary:   s.engine.PersonaSummary(&person),
		Archetype: s.engine.DominantArchetype(&person),
	}
	respondJSON(w, r, http.StatusOK, payload, nil)
}

// Categories dumps the full catalog with store URLs.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	cats := s.catalog.Categories()
	payload := make([]categoryPayload, len(cats))
	for i := range cats {
		payload[i] = categoryPayload{
			GiftCategory: cats[i],
			StoreURL:     catalog.StoreURL(&cats[i]),
		}
	}
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"categories": payload,
		"count":      len(payload),
	}, nil)
}

func decorateSuggestions(in []suggest.Suggestion) []suggestionPayload {
	out := make([]suggestionPayload, len(in))
	for i := range in {
		out[i] = suggestionPayload{
			Suggestion: in[i],
			StoreURL:   catalog.StoreURL(&in[i].Category),
		}
	}
	return out
}
