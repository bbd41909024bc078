package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository implements ProductRepository interface using GORM
type ProductRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func productToEntity(m *model.Product, categoryIDs []uint64) *entity.Product {
	p := &entity.Product{
		ID:              m.ID,
		Name:            m.Name,
		Slug:            m.Slug,
		Description:     m.Description,
		Price:           m.Price,
		ViewCount:       m.ViewCount,
		CategoryIDs:     categoryIDs,
		VoucherEnabled:  m.VoucherEnabled,
		VoucherQuantity: m.VoucherQuantity,
		EditLock:        lockColumns{ID: m.ID, EditingUserID: m.EditingUserID, EditLockTime: m.EditLockTime}.toEntity(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if p.CategoryIDs == nil {
		p.CategoryIDs = []uint64{}
	}
	return p
}

// handleDatabaseError standardizes database error handling
func (r *ProductRepository) handleDatabaseError(operation string, err error, productID uint64) error {
	if r.errorClassifier.ViolatesUnique(err, "idx_products_slug", "products.slug") {
		r.logger.Warn("Duplicate product slug", map[string]any{
			"product_id": productID,
		})
		return errs.ErrDuplicateSlug
	}
	if r.errorClassifier.IsForeignKeyError(err) {
		return errs.ErrCategoryNotFound
	}

	mapped := mapDatabaseError(r.errorClassifier, err, errs.ErrProductNotFound)
	if mapped != errs.ErrProductNotFound {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
	}
	return mapped
}

// Create stores a new product and its category links
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := r.timeProvider.Now()
	m := model.Product{
		Name:            product.Name,
		Slug:            product.Slug,
		Description:     product.Description,
		Price:           product.Price,
		VoucherEnabled:  product.VoucherEnabled,
		VoucherQuantity: product.VoucherQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating product", err, 0)
	}
	if err := r.replaceCategories(db, m.ID, product.CategoryIDs); err != nil {
		return r.handleDatabaseError("linking product categories", err, m.ID)
	}

	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt

	r.logger.Info("Product created successfully", map[string]any{
		"product_id":       product.ID,
		"slug":             product.Slug,
		"voucher_enabled":  product.VoucherEnabled,
		"voucher_quantity": product.VoucherQuantity,
	})
	return nil
}

// GetByID retrieves a product with its category ids
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a product under SELECT ... FOR UPDATE
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Product, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *ProductRepository) get(q *gorm.DB, id uint64) (*entity.Product, error) {
	var m model.Product
	if err := q.Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting product", err, id)
	}

	categoryIDs, err := r.categoryIDs(q.Session(&gorm.Session{NewDB: true}), []uint64{id})
	if err != nil {
		return nil, r.handleDatabaseError("getting product categories", err, id)
	}

	return productToEntity(&m, categoryIDs[id]), nil
}

// List returns products ordered by id
func (r *ProductRepository) List(ctx context.Context, opts persistence.ListOptions) ([]*entity.Product, error) {
	db := r.db.WithContext(ctx)

	var models []model.Product
	q := db.Order("id ASC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing products", err, 0)
	}

	ids := make([]uint64, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	categoryIDs, err := r.categoryIDs(db, ids)
	if err != nil {
		return nil, r.handleDatabaseError("listing product categories", err, 0)
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, productToEntity(&models[i], categoryIDs[models[i].ID]))
	}
	return products, nil
}

// Update writes the content fields and category links
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	db := r.db.WithContext(ctx)
	now := r.timeProvider.Now()

	result := db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            product.Name,
			"slug":            product.Slug,
			"description":     product.Description,
			"price":           product.Price,
			"voucher_enabled": product.VoucherEnabled,
			"updated_at":      now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating product", result.Error, product.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}
	if err := r.replaceCategories(db, product.ID, product.CategoryIDs); err != nil {
		return r.handleDatabaseError("linking product categories", err, product.ID)
	}

	product.UpdatedAt = now
	r.logger.Info("Product updated successfully", map[string]any{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return nil
}

// IncrementViewCount adds one to view_count
func (r *ProductRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return r.handleDatabaseError("incrementing view count", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// DecrementVoucherQuantity removes one voucher from the pool.
// The guard keeps the column non-negative even without a row lock.
func (r *ProductRepository) DecrementVoucherQuantity(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND voucher_quantity > 0", id).
		UpdateColumn("voucher_quantity", gorm.Expr("voucher_quantity - ?", 1))
	if result.Error != nil {
		return r.handleDatabaseError("decrementing voucher quantity", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrVoucherExhausted
	}
	return nil
}

func (r *ProductRepository) replaceCategories(db *gorm.DB, productID uint64, categoryIDs []uint64) error {
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductCategory{}).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]model.ProductCategory, 0, len(categoryIDs))
	seen := make(map[uint64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, model.ProductCategory{ProductID: productID, CategoryID: id})
	}
	return db.Omit(clause.Associations).Create(&links).Error
}

func (r *ProductRepository) categoryIDs(db *gorm.DB, productIDs []uint64) (map[uint64][]uint64, error) {
	result := make(map[uint64][]uint64, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var links []model.ProductCategory
	err := db.Where("product_id IN ?", productIDs).
		Order("product_id ASC, category_id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		result[l.ProductID] = append(result[l.ProductID], l.CategoryID)
	}
	return result, nil
}
