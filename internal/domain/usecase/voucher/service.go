package voucher

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// DefaultCodeAttempts bounds how many fresh codes a claim tries after collisions
const DefaultCodeAttempts = 3

// Service allocates vouchers from per-product pools
type Service struct {
	uow          persistence.UnitOfWork
	logger       coreport.Logger
	newCode      func() string
	codeAttempts int
}

var _ usecase.VoucherUseCase = (*Service)(nil)

// NewService creates a new voucher Service
func NewService(
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	codeAttempts int,
) *Service {
	if codeAttempts < 1 {
		codeAttempts = DefaultCodeAttempts
	}
	return &Service{
		uow:          uow,
		logger:       logger,
		newCode:      entity.NewVoucherCode,
		codeAttempts: codeAttempts,
	}
}

// WithCodeGenerator replaces the voucher code generator
func (s *Service) WithCodeGenerator(gen func() string) *Service {
	s.newCode = gen
	return s
}

// ListForUser returns the user's vouchers, newest first
func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]*entity.Voucher, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	return s.uow.GetVoucherRepository(ctx).ListByUser(ctx, userID)
}

// GetForUser returns one voucher owned by userID
func (s *Service) GetForUser(ctx context.Context, id, userID uint64) (*entity.Voucher, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthenticated
	}
	if id == 0 {
		return nil, errs.ErrInvalidEntityID
	}
	return s.uow.GetVoucherRepository(ctx).GetByIDForUser(ctx, id, userID)
}
