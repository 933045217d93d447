// Package catalog derives filtered, in-memory views over the product list.
// Everything here is a pure function: no side effects, no persistence.
package catalog

import (
	"strings"

	"societymarket/internal/models"
)

// Filter returns the products matching searchTerm and category, preserving
// the input order. A product matches when searchTerm is a case-insensitive
// substring of its title or description AND its category equals category
// exactly. An empty searchTerm or category acts as a wildcard.
//
// Matching is plain substring, not tokenized or fuzzy, and there is no
// ranking: the result order is catalog order.
func Filter(products []models.Product, searchTerm, category string) []models.Product {
	term := strings.ToLower(searchTerm)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesCategory := category == "" || p.Category == category

		if matchesSearch && matchesCategory {
			result = append(result, p)
		}
	}
	return result
}

// LikedView returns the products whose id appears in likedIDs, in catalog
// order. Dangling ids, referencing products removed from the catalog after
// being liked, are silently skipped.
func LikedView(products []models.Product, likedIDs []string) []models.Product {
	liked := make(map[string]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}

	result := make([]models.Product, 0, len(likedIDs))
	for _, p := range products {
		if _, ok := liked[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result
}

// MyListings returns the products listed by sellerID, in catalog order.
func MyListings(products []models.Product, sellerID string) []models.Product {
	result := make([]models.Product, 0)
	for _, p := range products {
		if p.SellerID == sellerID {
			result = append(result, p)
		}
	}
	return result
}
