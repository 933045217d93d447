package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"societymarket/internal/models"
)

func product(id, title, description, category, sellerID string) models.Product {
	return models.Product{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
		SellerID:    sellerID,
	}
}

func testProducts() []models.Product {
	return []models.Product{
		product("1", "MacBook Pro", "Laptop for developers", "Electronics", "s1"),
		product("2", "Vintage Sofa", "Brown leather sofa", "Furniture", "s2"),
		product("3", "iPhone 15 Pro Max", "Brand new, still sealed", "Electronics", "s1"),
		product("4", "Coffee Table", "Glass top, wooden legs", "Furniture", "s3"),
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		category string
		want     []string
	}{
		{name: "empty term and category match everything", want: []string{"1", "2", "3", "4"}},
		{name: "term matches title case-insensitively", term: "macbook", want: []string{"1"}},
		{name: "term matches description", term: "leather", want: []string{"2"}},
		{name: "term with mixed case", term: "IPHONE", want: []string{"3"}},
		{name: "category alone", category: "Furniture", want: []string{"2", "4"}},
		{name: "term and category combined", term: "pro", category: "Electronics", want: []string{"1", "3"}},
		{name: "category match is exact, not substring", category: "Furn", want: []string{}},
		{name: "no matches", term: "bicycle", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(testProducts(), tc.term, tc.category)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	reversed := []models.Product{
		product("4", "Coffee Table", "Glass top", "Furniture", "s3"),
		product("2", "Vintage Sofa", "Brown leather sofa", "Furniture", "s2"),
	}
	got := Filter(reversed, "", "Furniture")
	assert.Equal(t, []string{"4", "2"}, ids(got))
}

func TestLikedView_SkipsDanglingIDs(t *testing.T) {
	// "99" was liked but has since been removed from the catalog
	got := LikedView(testProducts(), []string{"2", "99", "3"})
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestLikedView_EmptyLikes(t *testing.T) {
	assert.Empty(t, LikedView(testProducts(), nil))
}

func TestMyListings(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, ids(MyListings(testProducts(), "s1")))
	assert.Equal(t, []string{"2"}, ids(MyListings(testProducts(), "s2")))
	assert.Empty(t, MyListings(testProducts(), "nobody"))
}
