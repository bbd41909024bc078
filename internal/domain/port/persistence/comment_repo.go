package persistence

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// CommentFilter narrows a comment listing; zero fields match everything
type CommentFilter struct {
	ProductID uint64
	UserID    uint64
}

// CommentRepository defines essential methods to interact with comment data
type CommentRepository interface {
	// Create inserts a comment, filling ID and timestamps
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	Create(ctx context.Context, comment *entity.Comment) error

	// GetByID returns a comment
	//
	// Possible errors:
	// - ErrCommentNotFound: If it doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Comment, error)

	// UpdateBody stores a new body and refreshes UpdatedAt
	//
	// Possible errors:
	// - ErrCommentNotFound: If it doesn't exist
	UpdateBody(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment
	//
	// Possible errors:
	// - ErrCommentNotFound: If it doesn't exist
	Delete(ctx context.Context, id uint64) error

	// List returns matching comments, oldest first
	List(ctx context.Context, filter CommentFilter, limit, offset int) ([]*entity.Comment, error)
}
