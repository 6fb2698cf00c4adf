// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

package catalog

import "net/url"

// searchBase returns the store's search URL prefix. The search query is
// appended URL-encoded.
func (s StoreType) searchBase() string {
	switch s {
	case StoreEtsy:
		return "https://www.etsy.com/search?q="
	case StoreEbay:
		return "https://www.ebay.com/sch/i.html?_nkw="
	default:
		return "https://www.amazon.com/s?k="
	}
}

// StoreURL builds the external shopping URL for a category from its store
// type and search query. Falls back to the category title when no search
// query is set.
func StoreURL(c *GiftCategory) string {
	q := c.SearchQuery
	if q == "" {
		q = c.Title
	}
	return c.Store.searchBase() + url.QueryEscape(q)
}
