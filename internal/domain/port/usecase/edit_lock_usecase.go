package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// AcquireResult describes a granted or renewed lease
type AcquireResult struct {
	Kind        entity.EntityKind
	EntityID    uint64
	EditingUser uint64
	ExpiresAt   time.Time
	Duration    time.Duration
	Renewed     bool
}

// LockStatus is the lease state as seen by one user
type LockStatus struct {
	Kind        entity.EntityKind
	EntityID    uint64
	CanEdit     bool
	EditingUser *uint64
	ExpiresAt   *time.Time
	IsYou       bool
}

// EditLockUseCase manages edit leases for one entity kind
type EditLockUseCase interface {
	// Kind returns the entity kind this manager serves
	Kind() entity.EntityKind

	// Acquire grants the lease to userID or renews it when userID already holds it.
	//
	// Possible errors:
	// - EditLockConflictError (ErrEditLocked): another user holds an active lease
	// - ErrProductNotFound / ErrCategoryNotFound
	Acquire(ctx context.Context, entityID, userID uint64) (*AcquireResult, error)

	// Release clears the lease unless another user holds it. Releasing an
	// unlocked or expired entity succeeds.
	//
	// Possible errors:
	// - LockOwnershipError (ErrLockNotHeld): another user holds an active lease
	// - ErrProductNotFound / ErrCategoryNotFound
	Release(ctx context.Context, entityID, userID uint64) error

	// Status reports whether userID may edit, clearing an expired lease first
	Status(ctx context.Context, entityID, userID uint64) (*LockStatus, error)

	// ReleaseAllForUser clears every lease of this kind held by userID,
	// expired or not, and returns how many were cleared
	ReleaseAllForUser(ctx context.Context, userID uint64) (int64, error)

	// GuardedUpdate runs mutate under the row lock and clears the lease in the
	// same transaction. mutate receives the transactional context.
	//
	// Possible errors:
	// - EditLockConflictError (ErrEditLocked): another user holds an active lease
	// - any error returned by mutate
	GuardedUpdate(ctx context.Context, entityID, userID uint64, mutate func(ctx context.Context) error) error

	// GuardedDelete deletes the row under the row lock
	//
	// Possible errors:
	// - EditLockConflictError (ErrEditLocked): another user holds an active lease
	GuardedDelete(ctx context.Context, entityID, userID uint64) error
}
