package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// CreateCategoryRequest represents the API request for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description string  `json:"description"`
	ParentID    *uint64 `json:"parent_id"`
}

// UpdateCategoryRequest represents a partial category update. An explicit
// "parent_id": null detaches the category from its parent.
type UpdateCategoryRequest struct {
	Name        *string         `json:"name"`
	Slug        *string         `json:"slug"`
	Description *string         `json:"description"`
	ParentID    json.RawMessage `json:"parent_id"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	ParentID     *uint64    `json:"parent_id"`
	EditingUser  *uint64    `json:"editing_user"`
	EditLockTime *time.Time `json:"edit_lock_time"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToInput converts the request to use case input
func (r CreateCategoryRequest) ToInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		ParentID:    r.ParentID,
	}
}

// ToInput converts the request to use case input
func (r UpdateCategoryRequest) ToInput() (usecase.UpdateCategoryInput, error) {
	input := usecase.UpdateCategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}

	if len(r.ParentID) == 0 {
		return input, nil
	}
	if string(r.ParentID) == "null" {
		input.ClearParent = true
		return input, nil
	}

	var parentID uint64
	if err := json.Unmarshal(r.ParentID, &parentID); err != nil {
		return input, err
	}
	input.ParentID = &parentID
	return input, nil
}

// NewCategoryResponse converts a category entity
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		ParentID:     c.ParentID,
		EditingUser:  c.EditingUser,
		EditLockTime: c.EditLockTime,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewCategoryListResponse converts a page of categories
func NewCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
