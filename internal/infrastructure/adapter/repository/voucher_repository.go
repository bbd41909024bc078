package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoucherRepository implements VoucherRepository interface using GORM
type VoucherRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVoucherRepository creates a new VoucherRepository instance
func NewVoucherRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *VoucherRepository {
	return &VoucherRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func voucherToEntity(m *model.Voucher) *entity.Voucher {
	return &entity.Voucher{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Code:      m.Code,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a voucher. Unique violations are told apart by index so the
// caller can distinguish a second claim from an unlucky code.
func (r *VoucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	m := model.Voucher{
		ProductID: voucher.ProductID,
		UserID:    voucher.UserID,
		Code:      voucher.Code,
		CreatedAt: r.timeProvider.Now(),
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	switch {
	case err == nil:
	case r.errorClassifier.ViolatesUnique(err, model.VoucherProductUserIndex, "vouchers.product_id", "vouchers.user_id"):
		r.logger.Warn("Voucher already claimed", map[string]any{
			"product_id": voucher.ProductID,
			"user_id":    voucher.UserID,
		})
		return errs.ErrVoucherAlreadyClaimed
	case r.errorClassifier.ViolatesUnique(err, model.VoucherCodeIndex, "vouchers.code"):
		r.logger.Warn("Voucher code collision", map[string]any{
			"product_id": voucher.ProductID,
			"code":       voucher.Code,
		})
		return errs.ErrVoucherCodeCollision
	case r.errorClassifier.IsForeignKeyError(err):
		return errs.ErrProductNotFound
	default:
		return r.handleDatabaseError("creating voucher", err, voucher.ProductID, voucher.UserID)
	}

	voucher.ID = m.ID
	voucher.CreatedAt = m.CreatedAt

	r.logger.Info("Voucher created", map[string]any{
		"voucher_id": voucher.ID,
		"product_id": voucher.ProductID,
		"user_id":    voucher.UserID,
	})
	return nil
}

// GetByProductAndUser returns the voucher a user owns for a product
func (r *VoucherRepository) GetByProductAndUser(ctx context.Context, productID, userID uint64) (*entity.Voucher, error) {
	var m model.Voucher
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting voucher", err, productID, userID)
	}
	return voucherToEntity(&m), nil
}

// GetByIDForUser returns the voucher with id when userID owns it
func (r *VoucherRepository) GetByIDForUser(ctx context.Context, id, userID uint64) (*entity.Voucher, error) {
	var m model.Voucher
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting voucher by id", err, 0, userID)
	}
	return voucherToEntity(&m), nil
}

// ExistsForProductAndUser reports whether the user owns a voucher for the product
func (r *VoucherRepository) ExistsForProductAndUser(ctx context.Context, productID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Voucher{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking voucher", err, productID, userID)
	}
	return count > 0, nil
}

// ListByUser returns the user's vouchers, newest first
func (r *VoucherRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Voucher, error) {
	var models []model.Voucher
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing vouchers", err, 0, userID)
	}

	vouchers := make([]*entity.Voucher, 0, len(models))
	for i := range models {
		vouchers = append(vouchers, voucherToEntity(&models[i]))
	}
	return vouchers, nil
}

// handleDatabaseError standardizes database error handling
func (r *VoucherRepository) handleDatabaseError(operation string, err error, productID, userID uint64) error {
	mapped := mapDatabaseError(r.errorClassifier, err, errs.ErrVoucherNotFound)
	if mapped != errs.ErrVoucherNotFound {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"product_id": productID,
			"user_id":    userID,
			"error":      err.Error(),
		})
	}
	return mapped
}
