// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import "testing"

func TestStoreURL(t *testing.T) {
	tests := []struct {
		name string
		cat  GiftCategory
		want string
	}{
		{
			name: "amazon with query",
			cat:  GiftCategory{Store: StoreAmazon, SearchQuery: "tech gadgets"},
			want: "https://www.amazon.com/s?k=tech+gadgets",
		},
		{
			name: "etsy",
			cat:  GiftCategory{Store: StoreEtsy, SearchQuery: "handmade jewelry"},
			want: "https://www.etsy.com/search?q=handmade+jewelry",
		},
		{
			name: "ebay",
			cat:  GiftCategory{Store: StoreEbay, SearchQuery: "vinyl records"},
			want: "https://www.ebay.com/sch/i.html?_nkw=vinyl+records",
		},
		{
			name: "falls back to title",
			cat:  GiftCategory{Store: StoreAmazon, Title: "Board Games"},
			want: "https://www.amazon.com/s?k=Board+Games",
		},
		{
			name: "escapes special characters",
			cat:  GiftCategory{Store: StoreAmazon, SearchQuery: "mugs & bowls"},
			want: "https://www.amazon.com/s?k=mugs+%26+bowls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StoreURL(&tt.cat); got != tt.want {
				t.Errorf("StoreURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
