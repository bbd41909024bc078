package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// LockableRepository reads and writes the edit lease columns of one table
type LockableRepository interface {
	// Kind returns the entity kind this repository serves
	Kind() entity.EntityKind

	// FindLock reads the lease columns without taking a row lock
	//
	// Possible errors:
	// - ErrProductNotFound / ErrCategoryNotFound: If the row doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	FindLock(ctx context.Context, id uint64) (entity.EditLock, error)

	// FindLockForUpdate reads the lease columns under SELECT ... FOR UPDATE.
	// Must be called inside UnitOfWork.Execute.
	//
	// Possible errors:
	// - ErrProductNotFound / ErrCategoryNotFound: If the row doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	FindLockForUpdate(ctx context.Context, id uint64) (entity.EditLock, error)

	// SaveLock writes both lease columns; a cleared lock writes NULLs
	SaveLock(ctx context.Context, id uint64, lock entity.EditLock) error

	// ClearLocksHeldBy nulls the lease of every row held by userID,
	// regardless of expiry, and returns the number of rows changed
	ClearLocksHeldBy(ctx context.Context, userID uint64) (int64, error)

	// Delete removes the row
	Delete(ctx context.Context, id uint64) error
}
