package usecase

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
)

// CommentUseCase defines the product comment operations
type CommentUseCase interface {
	// Create stores a comment written by userID
	//
	// Possible errors:
	// - ValidationError (ErrInvalidRequest)
	// - ErrProductNotFound
	Create(ctx context.Context, productID, userID uint64, body string) (*entity.Comment, error)

	// Get returns one comment
	Get(ctx context.Context, id uint64) (*entity.Comment, error)

	// List returns one page of matching comments, oldest first
	List(ctx context.Context, filter persistence.CommentFilter, page Page) ([]*entity.Comment, error)

	// Update replaces the body of a comment userID wrote
	//
	// Possible errors:
	// - ErrCommentNotFound
	// - OwnershipError (ErrNotOwner): the comment belongs to another user
	// - ValidationError (ErrInvalidRequest)
	Update(ctx context.Context, id, userID uint64, body string) (*entity.Comment, error)

	// Delete removes a comment userID wrote
	//
	// Possible errors:
	// - ErrCommentNotFound
	// - OwnershipError (ErrNotOwner)
	Delete(ctx context.Context, id, userID uint64) error
}
