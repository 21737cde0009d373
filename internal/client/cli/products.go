package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/trananh2004/shopfront/internal/common"
)

// Products lists the storefront catalog.
func (a *App) Products(ctx context.Context) error {
	list, err := a.products.List(ctx)
	if err != nil {
		fmt.Println("Could not load products:", err)
		return err
	}

	if len(list) == 0 {
		fmt.Println("No products")
		return nil
	}
	for _, p := range list {
		fmt.Printf("%4d  %-40s %8.2f\n", p.ID, p.Title, p.Price)
	}
	return nil
}

// Product prompts for a product id and prints the single item.
func (a *App) Product(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number")
		return err
	}

	p, err := a.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No such product")
		} else {
			fmt.Println("Could not load product:", err)
		}
		return err
	}

	fmt.Println("Title:      ", p.Title)
	fmt.Printf("Price:       %.2f\n", p.Price)
	if p.Category != "" {
		fmt.Println("Category:   ", p.Category)
	}
	if p.Description != "" {
		fmt.Println("Description:", p.Description)
	}
	return nil
}
