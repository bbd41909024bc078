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

// CommentRepository implements CommentRepository interface using GORM
type CommentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCommentRepository creates a new CommentRepository instance
func NewCommentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CommentRepository {
	return &CommentRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func commentToEntity(m *model.Comment) *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create stores a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	now := r.timeProvider.Now()
	m := model.Comment{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if r.errorClassifier.IsForeignKeyError(err) {
			return errs.ErrProductNotFound
		}
		return r.handleDatabaseError("creating comment", err, 0)
	}

	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt

	r.logger.Info("Comment created", map[string]any{
		"comment_id": comment.ID,
		"product_id": comment.ProductID,
		"user_id":    comment.UserID,
	})
	return nil
}

// GetByID retrieves a comment
func (r *CommentRepository) GetByID(ctx context.Context, id uint64) (*entity.Comment, error) {
	var m model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting comment", err, id)
	}
	return commentToEntity(&m), nil
}

// UpdateBody writes the body and bumps updated_at
func (r *CommentRepository) UpdateBody(ctx context.Context, comment *entity.Comment) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"body":       comment.Body,
			"updated_at": now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating comment", result.Error, comment.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCommentNotFound
	}

	comment.UpdatedAt = now
	r.logger.Info("Comment updated", map[string]any{
		"comment_id": comment.ID,
		"user_id":    comment.UserID,
	})
	return nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting comment", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCommentNotFound
	}

	r.logger.Info("Comment deleted", map[string]any{
		"comment_id": id,
	})
	return nil
}

// List returns comments matching the filter, oldest first
func (r *CommentRepository) List(ctx context.Context, filter persistence.CommentFilter, limit, offset int) ([]*entity.Comment, error) {
	var models []model.Comment
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if filter.ProductID > 0 {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID > 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing comments", err, 0)
	}

	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, commentToEntity(&models[i]))
	}
	return comments, nil
}

// handleDatabaseError standardizes database error handling
func (r *CommentRepository) handleDatabaseError(operation string, err error, commentID uint64) error {
	mapped := mapDatabaseError(r.errorClassifier, err, errs.ErrCommentNotFound)
	if mapped != errs.ErrCommentNotFound {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"comment_id": commentID,
			"error":      err.Error(),
		})
	}
	return mapped
}
