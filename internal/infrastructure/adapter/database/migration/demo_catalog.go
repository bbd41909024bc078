package migration

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

type demoProduct struct {
	input    usecase.CreateProductInput
	category string
}

var demoCategories = []usecase.CreateCategoryInput{
	{Name: "Electronics", Slug: "electronics", Description: "Phones, laptops and accessories"},
	{Name: "Books", Slug: "books", Description: "Printed and digital books"},
}

var demoProducts = []demoProduct{
	{
		input: usecase.CreateProductInput{
			Name: "Noise Cancelling Headphones", Slug: "noise-cancelling-headphones",
			Price: "199.99", VoucherEnabled: true, VoucherQuantity: 10,
		},
		category: "electronics",
	},
	{
		input: usecase.CreateProductInput{
			Name: "USB-C Charger", Slug: "usb-c-charger",
			Price: "24.50",
		},
		category: "electronics",
	},
	{
		input: usecase.CreateProductInput{
			Name: "The Go Programming Language", Slug: "the-go-programming-language",
			Price: "39.90", VoucherEnabled: true, VoucherQuantity: 3,
		},
		category: "books",
	},
}

// SeedDemoCatalog creates a small demo catalog. Entries whose slug already
// exists are skipped, so running it again is harmless.
func SeedDemoCatalog(ctx context.Context, categories usecase.CategoryUseCase, products usecase.ProductUseCase) error {
	categoryIDs := make(map[string]uint64, len(demoCategories))

	for _, input := range demoCategories {
		created, err := categories.Create(ctx, input)
		if errors.Is(err, errs.ErrDuplicateSlug) {
			continue
		}
		if err != nil {
			return err
		}
		categoryIDs[created.Slug] = created.ID
	}

	for _, demo := range demoProducts {
		input := demo.input
		if id, ok := categoryIDs[demo.category]; ok {
			input.CategoryIDs = []uint64{id}
		}
		if _, err := products.Create(ctx, input); err != nil && !errors.Is(err, errs.ErrDuplicateSlug) {
			return err
		}
	}

	return nil
}
