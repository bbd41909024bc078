package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockColumns is the projection of the lease columns shared by lockable tables
type lockColumns struct {
	ID            uint64
	EditingUserID *uint64
	EditLockTime  *time.Time
}

func (c lockColumns) toEntity() entity.EditLock {
	lock := entity.EditLock{}
	if c.EditingUserID != nil && c.EditLockTime != nil {
		user := *c.EditingUserID
		expiry := *c.EditLockTime
		lock.EditingUser = &user
		lock.EditLockTime = &expiry
	}
	return lock
}

// LockableRepository implements lease persistence for one lockable table
type LockableRepository struct {
	db              *gorm.DB
	kind            entity.EntityKind
	table           string
	newModel        func() any
	notFound        error
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLockableRepository creates a lease repository for kind
func NewLockableRepository(db *gorm.DB, kind entity.EntityKind, logger coreport.Logger) *LockableRepository {
	r := &LockableRepository{
		db:              db,
		kind:            kind,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}

	switch kind {
	case entity.KindProduct:
		r.table = model.Product{}.TableName()
		r.newModel = func() any { return &model.Product{} }
		r.notFound = errs.ErrProductNotFound
	case entity.KindCategory:
		r.table = model.Category{}.TableName()
		r.newModel = func() any { return &model.Category{} }
		r.notFound = errs.ErrCategoryNotFound
	default:
		panic(fmt.Sprintf("unsupported lockable kind: %q", kind))
	}

	return r
}

// Kind returns the entity kind this repository serves
func (r *LockableRepository) Kind() entity.EntityKind {
	return r.kind
}

// FindLock reads the lease columns without a row lock
func (r *LockableRepository) FindLock(ctx context.Context, id uint64) (entity.EditLock, error) {
	return r.findLock(ctx, r.db.WithContext(ctx), id)
}

// FindLockForUpdate reads the lease columns under SELECT ... FOR UPDATE.
// Concurrent callers on the same row queue here until the holder's transaction ends.
func (r *LockableRepository) FindLockForUpdate(ctx context.Context, id uint64) (entity.EditLock, error) {
	return r.findLock(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *LockableRepository) findLock(ctx context.Context, q *gorm.DB, id uint64) (entity.EditLock, error) {
	var row lockColumns
	err := q.Table(r.table).
		Select("id", "editing_user_id", "edit_lock_time").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return entity.EditLock{}, r.handleDatabaseError("reading lock", err, id)
	}
	return row.toEntity(), nil
}

// SaveLock writes both lease columns; a cleared lock writes NULLs
func (r *LockableRepository) SaveLock(ctx context.Context, id uint64, lock entity.EditLock) error {
	if !lock.Consistent() {
		return fmt.Errorf("%w: lease fields must be set together", errs.ErrInternalServer)
	}

	result := r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", id).
		Updates(map[string]any{
			"editing_user_id": lock.EditingUser,
			"edit_lock_time":  lock.EditLockTime,
		})
	if result.Error != nil {
		return r.handleDatabaseError("saving lock", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}

	r.logger.Debug("Edit lock saved", map[string]any{
		"kind":         r.kind,
		"entity_id":    id,
		"editing_user": lock.Holder(),
		"expires_at":   lock.ExpiresAt(),
	})
	return nil
}

// ClearLocksHeldBy nulls every lease held by userID, active or expired
func (r *LockableRepository) ClearLocksHeldBy(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Table(r.table).
		Where("editing_user_id = ?", userID).
		Updates(map[string]any{
			"editing_user_id": nil,
			"edit_lock_time":  nil,
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("clearing user locks", result.Error, 0)
	}

	r.logger.Debug("Cleared edit locks held by user", map[string]any{
		"kind":    r.kind,
		"user_id": userID,
		"count":   result.RowsAffected,
	})
	return result.RowsAffected, nil
}

// Delete removes the row; dependent rows go with it through ON DELETE rules
func (r *LockableRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(r.newModel(), id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}

	r.logger.Info("Entity deleted", map[string]any{
		"kind":      r.kind,
		"entity_id": id,
	})
	return nil
}

// handleDatabaseError standardizes database error handling
func (r *LockableRepository) handleDatabaseError(operation string, err error, id uint64) error {
	mapped := mapDatabaseError(r.errorClassifier, err, r.notFound)
	if mapped != r.notFound {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"kind":      r.kind,
			"entity_id": id,
			"error":     err.Error(),
		})
	}
	return mapped
}
