package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
)

// Category groups products and may be nested under a parent
type Category struct {
	ID          uint64
	Name        string
	Slug        string
	Description string
	ParentID    *uint64
	EditLock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory validates and builds a category that has not been stored yet
func NewCategory(name, slug, description string, parentID *uint64) (*Category, error) {
	c := &Category{
		Name:        strings.TrimSpace(name),
		Slug:        strings.TrimSpace(slug),
		Description: description,
		ParentID:    parentID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the content fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return errs.NewValidationError("name", "must not be empty")
	}
	if err := ValidateSlug(c.Slug); err != nil {
		return err
	}
	if c.ParentID != nil && c.ID != 0 && *c.ParentID == c.ID {
		return errs.NewValidationError("parent_id", "category cannot be its own parent")
	}
	return nil
}
