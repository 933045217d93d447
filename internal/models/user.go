// Package models defines the marketplace entities persisted by the storage
// layer: users, products, and the fixed category set.
package models

// User is a registered marketplace member. Records are append-only: once
// created, a user is never updated or deleted.
type User struct {
	// ID is a globally unique identifier assigned at signup.
	ID string `json:"id"`

	// Email is the natural uniqueness key for signup/login lookups.
	// Matching is exact and case-sensitive.
	Email string `json:"email"`

	// Name is the display name shown next to listings.
	Name string `json:"name"`

	// CreatedAt is the signup timestamp in RFC 3339 form. Immutable.
	CreatedAt string `json:"createdAt"`
}
