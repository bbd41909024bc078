package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// ListOptions bounds list queries
type ListOptions struct {
	Limit  int
	Offset int
}

// ProductRepository defines essential methods to interact with product data
type ProductRepository interface {
	// Create stores a new product and its category links, filling ID and timestamps
	//
	// Possible errors:
	// - ErrDuplicateSlug: If another product uses the slug
	// - ErrCategoryNotFound: If a linked category doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, product *entity.Product) error

	// GetByID retrieves a product with its category ids
	//
	// Possible errors:
	// - ErrProductNotFound: If product doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// GetByIDForUpdate retrieves a product under SELECT ... FOR UPDATE.
	// Must be called inside UnitOfWork.Execute.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Product, error)

	// List returns products ordered by id
	List(ctx context.Context, opts ListOptions) ([]*entity.Product, error)

	// Update writes the content fields and category links.
	// Lease columns and voucher_quantity are left untouched.
	//
	// Possible errors:
	// - ErrProductNotFound: If product doesn't exist
	// - ErrDuplicateSlug: If another product uses the slug
	Update(ctx context.Context, product *entity.Product) error

	// IncrementViewCount adds one to view_count
	IncrementViewCount(ctx context.Context, id uint64) error

	// DecrementVoucherQuantity removes one voucher from the pool.
	// Returns ErrVoucherExhausted when the pool is already empty.
	DecrementVoucherQuantity(ctx context.Context, id uint64) error
}
