package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// CategoryRepository defines essential methods to interact with category data
type CategoryRepository interface {
	// Create stores a new category
	//
	// Possible errors:
	// - ErrDuplicateSlug: If another category uses the slug
	// - ErrCategoryNotFound: If the parent doesn't exist
	Create(ctx context.Context, category *entity.Category) error

	// GetByID retrieves a category
	//
	// Possible errors:
	// - ErrCategoryNotFound: If category doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Category, error)

	// List returns categories ordered by id
	List(ctx context.Context, opts ListOptions) ([]*entity.Category, error)

	// Update writes the content fields, leaving the lease columns untouched
	Update(ctx context.Context, category *entity.Category) error
}
