package product

import (
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Service implements the product catalog operations. Updates and deletes go
// through the product edit-lock manager.
type Service struct {
	uow             persistence.UnitOfWork
	locks           usecase.EditLockUseCase
	logger          coreport.Logger
	defaultPageSize int
	maxPageSize     int
}

var _ usecase.ProductUseCase = (*Service)(nil)

// NewService creates a new product Service. locks must manage products.
func NewService(
	uow persistence.UnitOfWork,
	locks usecase.EditLockUseCase,
	logger coreport.Logger,
	defaultPageSize, maxPageSize int,
) *Service {
	if locks.Kind() != entity.KindProduct {
		panic(fmt.Sprintf("product: edit-lock manager serves %q", locks.Kind()))
	}
	return &Service{
		uow:             uow,
		locks:           locks,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}
