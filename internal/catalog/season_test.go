// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import (
	"testing"
	"time"
)

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSpring},
		{time.April, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.July, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonFall},
		{time.October, SeasonFall},
		{time.November, SeasonFall},
		{time.December, SeasonWinter},
	}

	for _, tt := range tests {
		if got := SeasonForMonth(tt.month); got != tt.want {
			t.Errorf("SeasonForMonth(%v) = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestInSeason(t *testing.T) {
	july := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
	january := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	winter := GiftCategory{ID: "w", Seasons: []Season{SeasonWinter}}
	allYear := GiftCategory{ID: "a", Seasons: []Season{SeasonAll}}
	mixed := GiftCategory{ID: "m", Seasons: []Season{SeasonSummer, SeasonFall}}

	if winter.InSeason(july) {
		t.Error("winter category should be out of season in July")
	}
	if !winter.InSeason(january) {
		t.Error("winter category should be in season in January")
	}
	if !allYear.InSeason(july) || !allYear.InSeason(january) {
		t.Error("ALL category should always be in season")
	}
	if !mixed.InSeason(july) {
		t.Error("summer+fall category should be in season in July")
	}
	if mixed.InSeason(january) {
		t.Error("summer+fall category should be out of season in January")
	}
}
