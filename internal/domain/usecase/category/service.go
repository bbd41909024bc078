package category

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// maxDepth bounds the parent walk used to reject cycles
const maxDepth = 64

// Service implements the category catalog operations
type Service struct {
	uow             persistence.UnitOfWork
	locks           usecase.EditLockUseCase
	logger          coreport.Logger
	defaultPageSize int
	maxPageSize     int
}

var _ usecase.CategoryUseCase = (*Service)(nil)

// NewService creates a new category Service. locks must manage categories.
func NewService(
	uow persistence.UnitOfWork,
	locks usecase.EditLockUseCase,
	logger coreport.Logger,
	defaultPageSize, maxPageSize int,
) *Service {
	if locks.Kind() != entity.KindCategory {
		panic(fmt.Sprintf("category: edit-lock manager serves %q", locks.Kind()))
	}
	return &Service{
		uow:             uow,
		locks:           locks,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Create validates and stores a category
func (s *Service) Create(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category, err := entity.NewCategory(input.Name, input.Slug, input.Description, input.ParentID)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		return s.uow.GetCategoryRepository(ctx).Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Category created", map[string]any{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, nil
}

// Get returns a category
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Category, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntityID
	}
	return s.uow.GetCategoryRepository(ctx).GetByID(ctx, id)
}

// List returns one page of categories ordered by id
func (s *Service) List(ctx context.Context, page usecase.Page) ([]*entity.Category, error) {
	page = page.Clamp(s.defaultPageSize, s.maxPageSize)
	return s.uow.GetCategoryRepository(ctx).List(ctx, persistence.ListOptions{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}
