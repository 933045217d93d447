package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"societymarket/internal/common"
	"societymarket/internal/models"
)

// promptProductInput walks the user through the listing fields.
func (a *App) promptProductInput(ctx context.Context) (models.ProductInput, error) {
	var in models.ProductInput

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return in, err
	}

	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return in, err
	}

	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return in, err
	}
	// Non-numeric input falls through as 0 and is reported by validation.
	price, _ := strconv.ParseFloat(priceText, 64)

	category, err := getSimpleText(a.reader,
		"Category ("+strings.Join(models.Categories, ", ")+")", os.Stdout)
	if err != nil {
		return in, err
	}

	imageURL, err := getSimpleText(a.reader, "Image URL", os.Stdout)
	if err != nil {
		return in, err
	}

	in = models.ProductInput{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
	}
	return in, nil
}

// Add prompts for the listing fields and creates a new product owned by the
// current user.
func (a *App) Add(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	in, err := a.promptProductInput(ctx)
	if err != nil {
		return err
	}

	p, err := a.products.Add(ctx, in, *user)
	if err != nil {
		printProductError(err)
		return nil
	}

	fmt.Printf("Listed %q (%s)\n", p.Title, p.ID)
	return nil
}

// Edit prompts for replacement fields for one of the user's own listings.
func (a *App) Edit(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.argOrPrompt(args, "Listing id")
	if err != nil {
		return err
	}

	in, err := a.promptProductInput(ctx)
	if err != nil {
		return err
	}

	p, err := a.products.Update(ctx, id, in, *user)
	if err != nil {
		printProductError(err)
		return nil
	}
	if p == nil {
		fmt.Println("Listing not found.")
		return nil
	}

	fmt.Printf("Updated %q\n", p.Title)
	return nil
}

// Delete removes one of the user's own listings.
func (a *App) Delete(ctx context.Context, args []string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	id, err := a.argOrPrompt(args, "Listing id")
	if err != nil {
		return err
	}

	if err := a.products.Delete(ctx, id, *user); err != nil {
		printProductError(err)
		return nil
	}

	fmt.Println("Deleted.")
	return nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// printProductError renders service errors for the user: field-level
// validation messages one per line, ownership violations as a short notice.
func printProductError(err error) {
	var fe models.FieldErrors
	if errors.As(err, &fe) {
		for field, msg := range fe {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}
	if errors.Is(err, common.ErrorNotOwner) {
		fmt.Println("Only the seller can change this listing.")
		return
	}
	log.Println(err.Error())
}
