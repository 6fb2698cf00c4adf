// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import "time"

// SeasonForMonth maps a calendar month to its season bucket.
// Fixed mapping: 3-5 spring, 6-8 summer, 9-11 fall, 12-2 winter.
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonAt returns the season for the given instant.
// Callers inject the clock value so tests can pin the season.
func SeasonAt(t time.Time) Season {
	return SeasonForMonth(t.Month())
}

// InSeason reports whether the category is appropriate at the given instant.
func (c *GiftCategory) InSeason(t time.Time) bool {
	return c.InSeasonSet(SeasonAt(t))
}
