// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import "github.com/goccy/go-json"

// The enums marshal as their canonical tokens so API payloads carry
// "WINTER" rather than an internal integer.

// MarshalJSON implements json.Marshaler.
func (s Season) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalJSON implements json.Marshaler.
func (b BudgetRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// MarshalJSON implements json.Marshaler.
func (t StyleTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// MarshalJSON implements json.Marshaler.
func (s StoreType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalJSON implements json.Marshaler.
func (g ArchetypeGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}
