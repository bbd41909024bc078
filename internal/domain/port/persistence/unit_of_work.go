package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Execute runs fn inside one database transaction. The context passed to fn
	// carries the transaction; repositories obtained from it are bound to it.
	// fn's error rolls the transaction back and is returned unchanged.
	// Deadlocks and serialization failures re-run fn from the start.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// GetLockableRepository returns the lease repository for kind bound to ctx
	GetLockableRepository(ctx context.Context, kind entity.EntityKind) LockableRepository

	// GetProductRepository returns a product repository bound to ctx
	GetProductRepository(ctx context.Context) ProductRepository

	// GetCategoryRepository returns a category repository bound to ctx
	GetCategoryRepository(ctx context.Context) CategoryRepository

	// GetVoucherRepository returns a voucher repository bound to ctx
	GetVoucherRepository(ctx context.Context) VoucherRepository

	// GetCommentRepository returns a comment repository bound to ctx
	GetCommentRepository(ctx context.Context) CommentRepository
}
