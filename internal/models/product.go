package models

import (
	"net/url"
	"sort"
	"strings"
)

// Product is a single marketplace listing.
type Product struct {
	// ID is a globally unique identifier assigned at creation.
	ID string `json:"id"`

	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// Category is one of the values in Categories.
	Category string `json:"category"`

	// ImageURL is expected to be a syntactically valid absolute URL.
	// It is never checked for reachability.
	ImageURL string `json:"imageUrl"`

	// SellerID references User.ID. SellerName is a denormalized copy of the
	// seller's name taken at creation/update time; there is no user-update
	// operation, so it cannot currently drift.
	SellerID   string `json:"sellerId"`
	SellerName string `json:"sellerName"`

	// CreatedAt is immutable; UpdatedAt is refreshed on every edit.
	// Both are RFC 3339 strings.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Categories is the closed set of listing categories.
var Categories = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Books",
	"Sports",
	"Home & Garden",
	"Automotive",
	"Other",
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FieldErrors maps a field name to a human-readable validation message.
// It satisfies error so services can return it directly.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fe))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// ProductInput carries the user-editable fields of a listing.
type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}

// Trimmed returns a copy of the input with surrounding whitespace removed
// from the free-text fields.
func (in ProductInput) Trimmed() ProductInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}

// Validate checks the input against the listing rules and returns a
// FieldErrors describing every violation, or nil if the input is valid.
func (in ProductInput) Validate() error {
	in = in.Trimmed()
	fe := FieldErrors{}

	switch {
	case in.Title == "":
		fe["title"] = "title is required"
	case len(in.Title) < 3:
		fe["title"] = "title must be at least 3 characters"
	}

	switch {
	case in.Description == "":
		fe["description"] = "description is required"
	case len(in.Description) < 10:
		fe["description"] = "description must be at least 10 characters"
	}

	if in.Price <= 0 {
		fe["price"] = "price must be a positive number"
	}

	switch {
	case in.Category == "":
		fe["category"] = "category is required"
	case !ValidCategory(in.Category):
		fe["category"] = "unknown category"
	}

	switch {
	case in.ImageURL == "":
		fe["imageUrl"] = "image URL is required"
	case !validURL(in.ImageURL):
		fe["imageUrl"] = "image URL must be a valid URL"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

// validURL accepts only absolute URLs, mirroring the strictness of browser
// URL parsing ("example.com" without a scheme is rejected).
func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
