package product

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Get returns a product as seen by userID and counts the view
func (s *Service) Get(ctx context.Context, id, userID uint64) (*usecase.ProductDetail, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntityID
	}

	products := s.uow.GetProductRepository(ctx)
	product, err := products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := products.IncrementViewCount(ctx, id); err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Warn("Failed to count product view", map[string]any{
			"product_id": id,
			"error":      err.Error(),
		})
	} else {
		product.ViewCount++
	}

	claimed := false
	if userID != 0 {
		claimed, err = s.uow.GetVoucherRepository(ctx).ExistsForProductAndUser(ctx, id, userID)
		if err != nil {
			return nil, err
		}
	}

	return &usecase.ProductDetail{
		Product:           product,
		AvailableVouchers: product.AvailableVouchers(),
		UserHasClaimed:    claimed,
	}, nil
}

// List returns one page of products ordered by id
func (s *Service) List(ctx context.Context, page usecase.Page) ([]*entity.Product, error) {
	page = page.Clamp(s.defaultPageSize, s.maxPageSize)
	return s.uow.GetProductRepository(ctx).List(ctx, persistence.ListOptions{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}
