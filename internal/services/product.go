package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"societymarket/internal/catalog"
	"societymarket/internal/common"
	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/storage"
)

// ProductService exposes the catalog operations: browsing the derived views
// and mutating listings and likes.
type ProductService interface {
	// Browse returns the catalog filtered by a free-text term and an
	// optional category; empty values act as wildcards.
	Browse(ctx context.Context, searchTerm, category string) []models.Product

	// Add validates in and appends a new listing owned by seller.
	// A validation failure is returned as models.FieldErrors.
	Add(ctx context.Context, in models.ProductInput, seller models.User) (*models.Product, error)

	// Update edits the listing with the given id. Editing an id no longer in
	// the catalog is a silent no-op: the result is (nil, nil). Editing a
	// listing owned by someone else fails with common.ErrorNotOwner.
	Update(ctx context.Context, id string, in models.ProductInput, actor models.User) (*models.Product, error)

	// Delete removes the listing with the given id. An absent id is a silent
	// no-op. Liked indexes referencing the id are left dangling on purpose;
	// readers filter them out.
	Delete(ctx context.Context, id string, actor models.User) error

	// ToggleLike adds productID to userID's likes when absent, removes it
	// when present. Reports the resulting liked state.
	ToggleLike(ctx context.Context, userID, productID string) bool

	// IsLiked reports whether productID is in userID's likes.
	IsLiked(ctx context.Context, userID, productID string) bool

	// Liked returns the user's liked products still present in the catalog.
	Liked(ctx context.Context, userID string) []models.Product

	// Listings returns the products listed by sellerID.
	Listings(ctx context.Context, sellerID string) []models.Product
}

type productService struct {
	store   *storage.Store
	log     logging.Logger
	latency time.Duration
}

// NewProductService constructs a ProductService over the local store.
// latency is the artificial delay applied to add and update.
func NewProductService(store *storage.Store, log logging.Logger, latency time.Duration) ProductService {
	return &productService{
		store:   store,
		log:     log.With("component", "products"),
		latency: latency,
	}
}

func (s *productService) Browse(ctx context.Context, searchTerm, category string) []models.Product {
	return catalog.Filter(s.store.GetProducts(ctx), searchTerm, category)
}

func (s *productService) Add(ctx context.Context, in models.ProductInput, seller models.User) (*models.Product, error) {
	in = in.Trimmed()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := models.Product{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products := append(s.store.GetProducts(ctx), p)
	s.store.SaveProducts(ctx, products)

	s.log.Info(ctx, "product added", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (s *productService) Update(ctx context.Context, id string, in models.ProductInput, actor models.User) (*models.Product, error) {
	in = in.Trimmed()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	products := s.store.GetProducts(ctx)
	for i, p := range products {
		if p.ID != id {
			continue
		}
		if p.SellerID != actor.ID {
			return nil, common.ErrorNotOwner
		}

		p.Title = in.Title
		p.Description = in.Description
		p.Price = in.Price
		p.Category = in.Category
		p.ImageURL = in.ImageURL
		// The seller name is a denormalized cache, re-issued on every write.
		p.SellerName = actor.Name
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		products[i] = p
		s.store.SaveProducts(ctx, products)

		s.log.Info(ctx, "product updated", "id", p.ID)
		return &p, nil
	}

	// The listing disappeared between read and edit; nothing to do.
	s.log.Warn(ctx, "product to update not found", "id", id)
	return nil, nil
}

func (s *productService) Delete(ctx context.Context, id string, actor models.User) error {
	products := s.store.GetProducts(ctx)

	kept := make([]models.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			if p.SellerID != actor.ID {
				return common.ErrorNotOwner
			}
			found = true
			continue
		}
		kept = append(kept, p)
	}

	if !found {
		s.log.Warn(ctx, "product to delete not found", "id", id)
		return nil
	}

	s.store.SaveProducts(ctx, kept)
	s.log.Info(ctx, "product deleted", "id", id)
	return nil
}

func (s *productService) ToggleLike(ctx context.Context, userID, productID string) bool {
	ids := s.store.GetLikedProductIDs(ctx, userID)

	for i, id := range ids {
		if id == productID {
			s.store.SetLikedProductIDs(ctx, userID, append(ids[:i:i], ids[i+1:]...))
			return false
		}
	}

	s.store.SetLikedProductIDs(ctx, userID, append(ids, productID))
	return true
}

func (s *productService) IsLiked(ctx context.Context, userID, productID string) bool {
	for _, id := range s.store.GetLikedProductIDs(ctx, userID) {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *productService) Liked(ctx context.Context, userID string) []models.Product {
	return catalog.LikedView(s.store.GetProducts(ctx), s.store.GetLikedProductIDs(ctx, userID))
}

func (s *productService) Listings(ctx context.Context, sellerID string) []models.Product {
	return catalog.MyListings(s.store.GetProducts(ctx), sellerID)
}
