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

// CategoryRepository implements CategoryRepository interface using GORM
type CategoryRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categoryToEntity(m *model.Category) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		ParentID:    m.ParentID,
		EditLock:    lockColumns{ID: m.ID, EditingUserID: m.EditingUserID, EditLockTime: m.EditLockTime}.toEntity(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CategoryRepository) handleDatabaseError(operation string, err error, categoryID uint64) error {
	if r.errorClassifier.ViolatesUnique(err, "idx_categories_slug", "categories.slug") {
		r.logger.Warn("Duplicate category slug", map[string]any{
			"category_id": categoryID,
		})
		return errs.ErrDuplicateSlug
	}
	if r.errorClassifier.IsForeignKeyError(err) {
		return errs.ErrCategoryNotFound
	}

	mapped := mapDatabaseError(r.errorClassifier, err, errs.ErrCategoryNotFound)
	if mapped != errs.ErrCategoryNotFound {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"category_id": categoryID,
			"error":       err.Error(),
		})
	}
	return mapped
}

// Create stores a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	now := r.timeProvider.Now()
	m := model.Category{
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ParentID:    category.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating category", err, 0)
	}

	category.ID = m.ID
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt

	r.logger.Info("Category created successfully", map[string]any{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return nil
}

// GetByID retrieves a category
func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*entity.Category, error) {
	var m model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting category", err, id)
	}
	return categoryToEntity(&m), nil
}

// List returns categories ordered by id
func (r *CategoryRepository) List(ctx context.Context, opts persistence.ListOptions) ([]*entity.Category, error) {
	var models []model.Category
	q := r.db.WithContext(ctx).Order("id ASC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing categories", err, 0)
	}

	categories := make([]*entity.Category, 0, len(models))
	for i := range models {
		categories = append(categories, categoryToEntity(&models[i]))
	}
	return categories, nil
}

// Update writes the content fields
func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
			"parent_id":   category.ParentID,
			"updated_at":  now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating category", result.Error, category.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}

	category.UpdatedAt = now
	r.logger.Info("Category updated successfully", map[string]any{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return nil
}
