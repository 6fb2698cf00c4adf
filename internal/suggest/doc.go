// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package suggest implements the gift suggestion engine.
//
// # Pipeline
//
// A suggestion request flows through four stages:
//
//  1. Exclusion: categories the person purchased in the last year, explicitly
//     rejected, or whose tags match a disliked string are removed.
//  2. Filtering: out-of-season categories and, when a budget filter is set,
//     categories in other budget tiers are removed.
//  3. Scoring: each remaining category receives a relevance score from
//     interest-tag overlap, style and budget matches, blended with a
//     creativity knob that trades deterministic relevance for discovery.
//  4. Ranking: candidates are sorted by score descending and truncated.
//
// # Determinism
//
// All pseudo-random behavior (the creativity "spark" and the simulated price
// drop) is derived from FNV-1a hashes of the category id combined with a
// quantized clock value, so results are reproducible within a time bucket and
// fully pinnable in tests via the injectable clock. With creativity 0 the
// pipeline is completely deterministic.
//
// # Shadow Learning
//
// Explicit rejections are persisted through the FeedbackStore interface and
// silently suppress the rejected category from future suggestion lists until
// cleared. Feedback never re-weights scores; it only removes candidates.
//
// # Thread Safety
//
// The Engine is safe for concurrent use. The only mutable state is the
// mutex-guarded random source used to pick a random gift; scoring itself is
// pure.
package suggest
