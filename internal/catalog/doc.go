// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package catalog provides the static gift category and archetype catalog.
//
// # Loading
//
// The catalog ships embedded in the binary as JSON and is parsed exactly once
// per process, on first access, under a sync.Once guard. Parse failures are
// recovered locally: the affected list is replaced by a small hard-coded
// fallback and the failure is logged, never propagated to callers.
//
// # Enum Leniency
//
// Source data is parsed leniently so that catalog edits can never take the
// service down:
//
//   - unknown style tokens are dropped from the style list
//   - unknown season tokens are dropped from the season list
//   - an unknown budget token defaults to BudgetMedium
//   - an unknown store token defaults to StoreAmazon
//   - an absent or empty season list defaults to {SeasonAll}
//
// The season set of a returned category is therefore never empty.
//
// # Thread Safety
//
// Store is safe for concurrent use. The cached slices are shared between all
// callers and must be treated as read-only.
package catalog
