// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package suggest

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// Deterministic pseudo-randomness: every "random" signal in the pipeline is a
// pure function of (FNV-1a hash of the category id, quantized clock value).
// Same construction across ports keeps behavior reproducible and testable
// with an injected clock.
const (
	// sparkBucketMillis quantizes the clock into ~100-second buckets for the
	// creativity spark: stable within a short window, not permanently fixed.
	sparkBucketMillis = 100_000

	// sparkMax is the inclusive upper bound of the creativity spark.
	sparkMax = 20

	// sparkThreshold is the creativity level above which the spark applies.
	sparkThreshold = 0.7

	// priceDropProbability is the per-day chance of a simulated discount.
	priceDropProbability = 0.2

	// priceDropMin and priceDropMax bound the discount percentage.
	priceDropMin = 5
	priceDropMax = 30
)

// hashCategoryID hashes a category id with FNV-1a 64.
func hashCategoryID(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id)) //nolint:errcheck // fnv Write never fails
	return int64(h.Sum64())
}

// randomSpark draws the discovery bonus in [0, 20] for a category at the
// given instant. The seed is hash(id) + floor(unixMillis / 100000), so the
// value is stable within a bucket and varies across buckets and categories.
func randomSpark(categoryID string, now time.Time) int {
	seed := hashCategoryID(categoryID) + now.UnixMilli()/sparkBucketMillis
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic discovery noise, not security
	return rng.Intn(sparkMax + 1)
}

// priceDrop returns the simulated discount percentage for a category on the
// given UTC day, or nil. Deterministic per (category, day): seed is
// hash(id) + days since epoch; with probability 0.2 the category is
// discounted by an integer in [5, 30].
func priceDrop(categoryID string, now time.Time) *int {
	const secondsPerDay = 86_400
	seed := hashCategoryID(categoryID) + now.UTC().Unix()/secondsPerDay
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic discount simulation

	if rng.Float64() >= priceDropProbability {
		return nil
	}
	pct := priceDropMin + rng.Intn(priceDropMax-priceDropMin+1)
	return &pct
}
