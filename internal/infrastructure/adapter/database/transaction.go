package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	retryConfig  RetryConfig
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retryConfig RetryConfig) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		retryConfig:  retryConfig,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider),
	}
}

// Execute runs fn in a transaction, re-running it when it loses a lock race.
// A call made with a context that already carries a transaction joins it.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnError(ctx, u.retryConfig, func() error {
		_, err := u.metrics.MeasureQuery(ctx, "transaction", func() (int64, error) {
			return 0, u.executeOnce(ctx, fn)
		})
		return err
	}, isRetryableTxError, u.logger)
}

func (u *UnitOfWork) executeOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			u.rollback(tx)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		u.rollback(tx)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// rollback rolls back tx, ignoring transactions that are already finished
func (u *UnitOfWork) rollback(tx *gorm.DB) {
	err := tx.Rollback().Error
	if err == nil {
		return
	}
	if strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return
	}
	u.logger.Error("Failed to rollback transaction", map[string]any{
		"error": fmt.Sprintf("%v", err),
	})
}

// isRetryableTxError reports whether the whole transaction may be re-run
func isRetryableTxError(err error) bool {
	return errors.Is(err, errs.ErrConcurrentUpdate)
}

// GetLockableRepository returns a lease repository in the current transaction
func (u *UnitOfWork) GetLockableRepository(ctx context.Context, kind entity.EntityKind) persistence.LockableRepository {
	return repository.NewLockableRepository(u.getDbFromContext(ctx), kind, u.logger)
}

// GetProductRepository returns a product repository in the current transaction
func (u *UnitOfWork) GetProductRepository(ctx context.Context) persistence.ProductRepository {
	return repository.NewProductRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetCategoryRepository returns a category repository in the current transaction
func (u *UnitOfWork) GetCategoryRepository(ctx context.Context) persistence.CategoryRepository {
	return repository.NewCategoryRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetVoucherRepository returns a voucher repository in the current transaction
func (u *UnitOfWork) GetVoucherRepository(ctx context.Context) persistence.VoucherRepository {
	return repository.NewVoucherRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetCommentRepository returns a comment repository in the current transaction
func (u *UnitOfWork) GetCommentRepository(ctx context.Context) persistence.CommentRepository {
	return repository.NewCommentRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db
}
