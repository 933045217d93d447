package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"societymarket/internal/models"
)

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}
	for _, p := range products {
		fmt.Printf("%s  %-30s  $%.2f  %-13s  by %s\n", p.ID, p.Title, p.Price, p.Category, p.SellerName)
	}
	fmt.Printf("%d product(s)\n", len(products))
}

// Browse lists the catalog, optionally narrowed by a free-text term given as
// arguments ("browse vintage sofa").
func (a *App) Browse(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	printProducts(a.products.Browse(ctx, term, ""))
	return nil
}

// Search prompts for a term and a category and lists the matching products.
// Empty answers act as wildcards.
func (a *App) Search(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search term (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader,
		"Category (empty for all; "+strings.Join(models.Categories, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}

	printProducts(a.products.Browse(ctx, term, category))
	return nil
}

// Like toggles a product in the current user's liked list.
func (a *App) Like(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.argOrPrompt(args, "Product id")
	if err != nil {
		return err
	}

	if a.products.ToggleLike(ctx, user.ID, id) {
		fmt.Println("Liked.")
	} else {
		fmt.Println("Unliked.")
	}
	return nil
}

// Liked lists the current user's liked products that are still for sale.
func (a *App) Liked(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	printProducts(a.products.Liked(ctx, user.ID))
	return nil
}

// Mine lists the current user's own listings.
func (a *App) Mine(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	printProducts(a.products.Listings(ctx, user.ID))
	return nil
}
