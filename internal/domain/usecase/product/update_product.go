package product

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Update applies input to the product while userID may edit it. A successful
// update releases the caller's lease.
func (s *Service) Update(ctx context.Context, id, userID uint64, input usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := s.locks.GuardedUpdate(ctx, id, userID, func(ctx context.Context) error {
		products := s.uow.GetProductRepository(ctx)

		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyUpdate(product, input); err != nil {
			return err
		}
		if err := products.Update(ctx, product); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.EditLock.Clear()
	return updated, nil
}

// Delete removes the product while userID may edit it
func (s *Service) Delete(ctx context.Context, id, userID uint64) error {
	return s.locks.GuardedDelete(ctx, id, userID)
}

func applyUpdate(product *entity.Product, input usecase.UpdateProductInput) error {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		product.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		price, err := parsePrice(*input.Price)
		if err != nil {
			return err
		}
		product.Price = price
	}
	if input.CategoryIDs != nil {
		product.CategoryIDs = append([]uint64{}, (*input.CategoryIDs)...)
	}
	if input.VoucherEnabled != nil {
		product.VoucherEnabled = *input.VoucherEnabled
	}

	return product.Validate()
}
