package usecase

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// Page bounds a list request; zero values select the configured defaults
type Page struct {
	Limit  int
	Offset int
}

// CreateProductInput carries the fields of a new product
type CreateProductInput struct {
	Name            string
	Slug            string
	Description     string
	Price           string // decimal string, e.g. "19.99"
	CategoryIDs     []uint64
	VoucherEnabled  bool
	VoucherQuantity int64
}

// UpdateProductInput carries a partial product update; nil fields are left unchanged.
// The voucher pool size cannot be changed after creation.
type UpdateProductInput struct {
	Name           *string
	Slug           *string
	Description    *string
	Price          *string
	CategoryIDs    *[]uint64
	VoucherEnabled *bool
}

// ProductDetail is a product as seen by one user
type ProductDetail struct {
	Product           *entity.Product
	AvailableVouchers int64
	UserHasClaimed    bool
}

// ProductUseCase defines the product catalog operations
type ProductUseCase interface {
	// Create validates and stores a product
	//
	// Possible errors:
	// - ValidationError (ErrInvalidRequest)
	// - ErrDuplicateSlug
	// - ErrCategoryNotFound: a linked category doesn't exist
	Create(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// Get returns the product and counts the view
	Get(ctx context.Context, id, userID uint64) (*ProductDetail, error)

	// List returns one page of products ordered by id
	List(ctx context.Context, page Page) ([]*entity.Product, error)

	// Update applies input while userID is allowed to edit, then clears the lease
	//
	// Possible errors:
	// - EditLockConflictError (ErrEditLocked)
	// - ValidationError (ErrInvalidRequest)
	// - ErrDuplicateSlug, ErrProductNotFound
	Update(ctx context.Context, id, userID uint64, input UpdateProductInput) (*entity.Product, error)

	// Delete removes the product while userID is allowed to edit
	Delete(ctx context.Context, id, userID uint64) error
}

// CreateCategoryInput carries the fields of a new category
type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uint64
}

// UpdateCategoryInput carries a partial category update; nil fields are left unchanged.
// ClearParent detaches the category from its parent.
type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
	ParentID    *uint64
	ClearParent bool
}

// CategoryUseCase defines the category catalog operations
type CategoryUseCase interface {
	Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	Get(ctx context.Context, id uint64) (*entity.Category, error)
	List(ctx context.Context, page Page) ([]*entity.Category, error)
	Update(ctx context.Context, id, userID uint64, input UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id, userID uint64) error
}

// Clamp applies defaultLimit to an unset limit and caps it at maxLimit
func (p Page) Clamp(defaultLimit, maxLimit int) Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
