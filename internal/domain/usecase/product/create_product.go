package product

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Create validates and stores a product together with its category links
func (s *Service) Create(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(input.Name, input.Slug, input.Description, price,
		input.CategoryIDs, input.VoucherEnabled, input.VoucherQuantity)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		return s.uow.GetProductRepository(ctx).Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product created", map[string]any{
		"product_id":       product.ID,
		"slug":             product.Slug,
		"voucher_enabled":  product.VoucherEnabled,
		"voucher_quantity": product.VoucherQuantity,
	})
	return product, nil
}

// parsePrice parses a decimal price string
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errs.NewValidationError("price", "is required")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errs.NewValidationError("price", "must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, errs.NewValidationError("price", "must not be negative")
	}
	return price.Round(entity.PriceScale), nil
}
