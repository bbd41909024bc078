package comment

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

const resourceName = "comment"

// Service implements the product comment operations
type Service struct {
	uow             persistence.UnitOfWork
	logger          coreport.Logger
	defaultPageSize int
	maxPageSize     int
}

var _ usecase.CommentUseCase = (*Service)(nil)

// NewService creates a new comment Service
func NewService(uow persistence.UnitOfWork, logger coreport.Logger, defaultPageSize, maxPageSize int) *Service {
	return &Service{
		uow:             uow,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Create validates and stores a comment written by userID
func (s *Service) Create(ctx context.Context, productID, userID uint64, body string) (*entity.Comment, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	comment, err := entity.NewComment(productID, userID, body)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetCommentRepository(ctx).Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("Comment posted", map[string]any{
		"comment_id": comment.ID,
		"product_id": comment.ProductID,
		"user_id":    userID,
	})
	return comment, nil
}

// Get returns a comment
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Comment, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntityID
	}
	return s.uow.GetCommentRepository(ctx).GetByID(ctx, id)
}

// List returns one page of comments matching filter
func (s *Service) List(ctx context.Context, filter persistence.CommentFilter, page usecase.Page) ([]*entity.Comment, error) {
	page = page.Clamp(s.defaultPageSize, s.maxPageSize)
	return s.uow.GetCommentRepository(ctx).List(ctx, filter, page.Limit, page.Offset)
}

// Update replaces the body when userID wrote the comment. The read and the
// write share a transaction.
func (s *Service) Update(ctx context.Context, id, userID uint64, body string) (*entity.Comment, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	if id == 0 {
		return nil, errs.ErrInvalidEntityID
	}

	var updated *entity.Comment
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		comments := s.uow.GetCommentRepository(ctx)
		comment, err := s.owned(ctx, comments, id, userID)
		if err != nil {
			return err
		}
		if err := comment.SetBody(body); err != nil {
			return err
		}
		if err := comments.UpdateBody(ctx, comment); err != nil {
			return err
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the comment when userID wrote it
func (s *Service) Delete(ctx context.Context, id, userID uint64) error {
	if userID == 0 {
		return errs.ErrUnauthenticated
	}
	if id == 0 {
		return errs.ErrInvalidEntityID
	}

	return s.uow.Execute(ctx, func(ctx context.Context) error {
		comments := s.uow.GetCommentRepository(ctx)
		if _, err := s.owned(ctx, comments, id, userID); err != nil {
			return err
		}
		return comments.Delete(ctx, id)
	})
}

func (s *Service) owned(ctx context.Context, comments persistence.CommentRepository, id, userID uint64) (*entity.Comment, error) {
	comment, err := comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !comment.OwnedBy(userID) {
		ownership := errs.NewOwnershipError(resourceName, id, userID, comment.UserID)
		s.logger.Warn("Comment change refused", errs.LogFields(ownership))
		return nil, ownership
	}
	return comment, nil
}
