// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/giftwise/internal/logging"
	"github.com/tomtom215/giftwise/internal/validation"
)

// apiResponse is the envelope every endpoint returns.
type apiResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Error    *apiError   `json:"error,omitempty"`
	Metadata metadata    `json:"metadata"`
}

// apiError is the structured error body.
type apiError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// sanitizeLogValue replaces control characters so request-derived strings
// cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes the envelope with proper headers.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, apiErr *apiError) {
	w.Header().Set("Content-Type", "application/json")

	response := apiResponse{
		Status: "ok",
		Data:   data,
		Error:  apiErr,
		Metadata: metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestIDFromContext(r.Context()),
		},
	}
	if apiErr != nil {
		response.Status = "error"
	}

	body, err := json.Marshal(&response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondError writes a structured error body.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("api error")
	}
	respondJSON(w, r, status, nil, &apiError{Code: code, Message: message})
}

// respondValidationError writes a 400 with per-field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestError) {
	respondJSON(w, r, http.StatusBadRequest, nil, &apiError{
		Code:    "VALIDATION_ERROR",
		Message: verr.Error(),
		Details: verr.Details(),
	})
}

// decodeJSONBody decodes a request body, rejecting unknown fields.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
