package category

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Update applies input to the category while userID may edit it. A successful
// update releases the caller's lease.
func (s *Service) Update(ctx context.Context, id, userID uint64, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	var updated *entity.Category

	err := s.locks.GuardedUpdate(ctx, id, userID, func(ctx context.Context) error {
		categories := s.uow.GetCategoryRepository(ctx)

		category, err := categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		applyUpdate(category, input)
		if err := category.Validate(); err != nil {
			return err
		}
		if category.ParentID != nil {
			if err := checkNoCycle(ctx, categories, category.ID, *category.ParentID); err != nil {
				return err
			}
		}
		if err := categories.Update(ctx, category); err != nil {
			return err
		}

		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.EditLock.Clear()
	return updated, nil
}

// Delete removes the category while userID may edit it. Children are detached.
func (s *Service) Delete(ctx context.Context, id, userID uint64) error {
	return s.locks.GuardedDelete(ctx, id, userID)
}

func applyUpdate(category *entity.Category, input usecase.UpdateCategoryInput) {
	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		category.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	switch {
	case input.ClearParent:
		category.ParentID = nil
	case input.ParentID != nil:
		parent := *input.ParentID
		category.ParentID = &parent
	}
}

// checkNoCycle walks up from parentID and fails if it reaches id
func checkNoCycle(ctx context.Context, categories persistence.CategoryRepository, id, parentID uint64) error {
	next := parentID
	for depth := 0; depth < maxDepth; depth++ {
		if next == id {
			return errs.NewValidationError("parent_id", "would create a cycle")
		}
		parent, err := categories.GetByID(ctx, next)
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		next = *parent.ParentID
	}
	return errs.NewValidationError("parent_id", "category tree is too deep")
}
