package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
)

// MaxCommentLength bounds a comment body in characters
const MaxCommentLength = 2000

// Comment is a user's note on a product. Only its author may change it.
type Comment struct {
	ID        uint64
	ProductID uint64
	UserID    uint64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment validates and builds a comment that has not been stored yet
func NewComment(productID, userID uint64, body string) (*Comment, error) {
	c := &Comment{
		ProductID: productID,
		UserID:    userID,
		Body:      strings.TrimSpace(body),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the comment fields
func (c *Comment) Validate() error {
	if c.ProductID == 0 {
		return errs.NewValidationError("product", "must be a positive id")
	}
	if c.Body == "" {
		return errs.NewValidationError("body", "must not be empty")
	}
	if utf8.RuneCountInString(c.Body) > MaxCommentLength {
		return errs.NewValidationError("body", "is too long")
	}
	return nil
}

// OwnedBy reports whether userID wrote the comment
func (c *Comment) OwnedBy(userID uint64) bool {
	return c.UserID == userID
}

// SetBody replaces the body after validating it
func (c *Comment) SetBody(body string) error {
	previous := c.Body
	c.Body = strings.TrimSpace(body)
	if err := c.Validate(); err != nil {
		c.Body = previous
		return err
	}
	return nil
}
