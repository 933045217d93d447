// Package seed populates the store with a fixed demo dataset on first run.
package seed

import (
	"context"

	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/storage"
)

// Initialize seeds each of the three seedable collections (user directory,
// product catalog, liked-index), but only when that collection's storage key
// is entirely absent. A collection that was explicitly written empty stays
// empty: seeding must never overwrite user-entered data. Safe to call on
// every startup.
func Initialize(ctx context.Context, store *storage.Store, log logging.Logger) {
	if !store.HasUsers(ctx) {
		store.SaveUsers(ctx, SampleUsers())
		log.Info(ctx, "seeded demo users", "count", len(SampleUsers()))
	}

	if !store.HasProducts(ctx) {
		store.SaveProducts(ctx, SampleProducts())
		log.Info(ctx, "seeded demo products", "count", len(SampleProducts()))
	}

	if !store.HasLikes(ctx) {
		for userID, ids := range SampleLikes() {
			store.SetLikedProductIDs(ctx, userID, ids)
		}
		log.Info(ctx, "seeded demo likes")
	}
}

// SampleUsers returns the demo user directory.
func SampleUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "john.doe@example.com", Name: "John Doe", CreatedAt: "2024-01-15T10:30:00Z"},
		{ID: "2", Email: "sarah.wilson@example.com", Name: "Sarah Wilson", CreatedAt: "2024-01-20T14:15:00Z"},
		{ID: "3", Email: "mike.chen@example.com", Name: "Mike Chen", CreatedAt: "2024-01-25T09:45:00Z"},
		{ID: "4", Email: "emma.garcia@example.com", Name: "Emma Garcia", CreatedAt: "2024-02-01T16:20:00Z"},
	}
}

// SampleProducts returns the demo catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Title:       `MacBook Pro 14" M3 Chip`,
			Description: "Barely used MacBook Pro with M3 chip, 16GB RAM, 512GB SSD. Perfect for developers and creative professionals. Includes original charger and box.",
			Price:       1899.99,
			Category:    "Electronics",
			ImageURL:    "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "1",
			SellerName:  "John Doe",
			CreatedAt:   "2024-02-15T10:30:00Z",
			UpdatedAt:   "2024-02-15T10:30:00Z",
		},
		{
			ID:          "2",
			Title:       "Vintage Leather Sofa",
			Description: "Beautiful vintage brown leather sofa in excellent condition. 3-seater, very comfortable. Perfect for living room or office space.",
			Price:       650.00,
			Category:    "Furniture",
			ImageURL:    "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Sarah Wilson",
			CreatedAt:   "2024-02-14T14:15:00Z",
			UpdatedAt:   "2024-02-14T14:15:00Z",
		},
		{
			ID:          "3",
			Title:       "iPhone 15 Pro Max",
			Description: "Brand new iPhone 15 Pro Max, 256GB, Natural Titanium. Still in original packaging, never used. Selling due to upgrade.",
			Price:       1099.99,
			Category:    "Electronics",
			ImageURL:    "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "3",
			SellerName:  "Mike Chen",
			CreatedAt:   "2024-02-13T09:45:00Z",
			UpdatedAt:   "2024-02-13T09:45:00Z",
		},
		{
			ID:          "4",
			Title:       "Designer Winter Coat",
			Description: "Elegant black wool winter coat from premium brand. Size M, worn only a few times. Perfect for professional settings.",
			Price:       180.00,
			Category:    "Clothing",
			ImageURL:    "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "4",
			SellerName:  "Emma Garcia",
			CreatedAt:   "2024-02-12T16:20:00Z",
			UpdatedAt:   "2024-02-12T16:20:00Z",
		},
		{
			ID:          "5",
			Title:       "Professional Camera Kit",
			Description: "Canon EOS R6 Mark II with 24-70mm lens, extra batteries, memory cards, and carrying case. Perfect for photography enthusiasts.",
			Price:       2299.99,
			Category:    "Electronics",
			ImageURL:    "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "1",
			SellerName:  "John Doe",
			CreatedAt:   "2024-02-11T11:00:00Z",
			UpdatedAt:   "2024-02-11T11:00:00Z",
		},
		{
			ID:          "6",
			Title:       "Modern Coffee Table",
			Description: "Sleek glass-top coffee table with wooden legs. Minimalist design, perfect for modern living spaces. Excellent condition.",
			Price:       220.00,
			Category:    "Furniture",
			ImageURL:    "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Sarah Wilson",
			CreatedAt:   "2024-02-10T13:30:00Z",
			UpdatedAt:   "2024-02-10T13:30:00Z",
		},
		{
			ID:          "7",
			Title:       "Programming Books Collection",
			Description: "Collection of 15 programming books including Clean Code, Design Patterns, and JavaScript guides. Great for developers.",
			Price:       120.00,
			Category:    "Books",
			ImageURL:    "https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "3",
			SellerName:  "Mike Chen",
			CreatedAt:   "2024-02-09T15:45:00Z",
			UpdatedAt:   "2024-02-09T15:45:00Z",
		},
		{
			ID:          "8",
			Title:       "Mountain Bike",
			Description: "Trek mountain bike, 21-speed, aluminum frame. Great for trails and city riding. Recently serviced with new tires.",
			Price:       450.00,
			Category:    "Sports",
			ImageURL:    "https://images.pexels.com/photos/100582/pexels-photo-100582.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "4",
			SellerName:  "Emma Garcia",
			CreatedAt:   "2024-02-08T12:15:00Z",
			UpdatedAt:   "2024-02-08T12:15:00Z",
		},
		{
			ID:          "9",
			Title:       "Garden Tool Set",
			Description: "Complete garden tool set with shovel, rake, pruning shears, and more. Perfect for gardening enthusiasts. Barely used.",
			Price:       85.00,
			Category:    "Home & Garden",
			ImageURL:    "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "1",
			SellerName:  "John Doe",
			CreatedAt:   "2024-02-07T10:00:00Z",
			UpdatedAt:   "2024-02-07T10:00:00Z",
		},
		{
			ID:          "10",
			Title:       "Wireless Headphones",
			Description: "Sony WH-1000XM5 noise-canceling headphones. Excellent sound quality, comfortable for long use. Includes case and cables.",
			Price:       280.00,
			Category:    "Electronics",
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Sarah Wilson",
			CreatedAt:   "2024-02-06T14:30:00Z",
			UpdatedAt:   "2024-02-06T14:30:00Z",
		},
		{
			ID:          "11",
			Title:       "Dining Table Set",
			Description: "Solid wood dining table with 4 chairs. Perfect for small families. Well-maintained and sturdy construction.",
			Price:       380.00,
			Category:    "Furniture",
			ImageURL:    "https://images.pexels.com/photos/1080721/pexels-photo-1080721.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "3",
			SellerName:  "Mike Chen",
			CreatedAt:   "2024-02-05T16:45:00Z",
			UpdatedAt:   "2024-02-05T16:45:00Z",
		},
		{
			ID:          "12",
			Title:       "Yoga Mat & Accessories",
			Description: "Premium yoga mat with blocks, strap, and carrying bag. Perfect for home workouts or studio classes. Like new condition.",
			Price:       65.00,
			Category:    "Sports",
			ImageURL:    "https://images.pexels.com/photos/3822906/pexels-photo-3822906.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "4",
			SellerName:  "Emma Garcia",
			CreatedAt:   "2024-02-04T11:20:00Z",
			UpdatedAt:   "2024-02-04T11:20:00Z",
		},
	}
}

// SampleLikes returns the demo liked-index, keyed by user id.
func SampleLikes() map[string][]string {
	return map[string][]string{
		"1": {"3", "5", "10"}, // John likes the iPhone, camera, and headphones
		"2": {"1", "7", "8"},  // Sarah likes the MacBook, books, and bike
		"3": {"2", "4", "12"}, // Mike likes the sofa, coat, and yoga mat
		"4": {"1", "6", "9"},  // Emma likes the MacBook, coffee table, and garden tools
	}
}
