package dto

import (
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
)

// CreateCommentRequest represents the API request for posting a comment
type CreateCommentRequest struct {
	Product uint64 `json:"product" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// UpdateCommentRequest replaces a comment body
type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        uint64    `json:"id"`
	Product   uint64    `json:"product"`
	User      uint64    `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentResponse converts a comment entity
func NewCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Product:   c.ProductID,
		User:      c.UserID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCommentListResponse converts a page of comments
func NewCommentListResponse(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
