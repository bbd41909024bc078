package voucher

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *persistencemocks.MockUnitOfWork
	products *persistencemocks.MockProductRepository
	vouchers *persistencemocks.MockVoucherRepository
	logger   *coremocks.MockLogger
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		products: persistencemocks.NewMockProductRepository(t),
		vouchers: persistencemocks.NewMockVoucherRepository(t),
		logger:   coremocks.NewMockLogger(t),
	}

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetProductRepository(mock.Anything).Return(f.products).Maybe()
	f.uow.EXPECT().GetVoucherRepository(mock.Anything).Return(f.vouchers).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(f.uow, f.logger, 2).WithCodeGenerator(func() string { return "VCH-000000000001" })
	return f
}

func pool(enabled bool, quantity int64) *entity.Product {
	return &entity.Product{ID: 5, Name: "Mug", Slug: "mug", VoucherEnabled: enabled, VoucherQuantity: quantity}
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues a voucher and decrements the pool", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(true, 1), nil).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(nil, errs.ErrVoucherNotFound).Once()
		f.products.EXPECT().GetByIDForUpdate(mock.Anything, uint64(5)).Return(pool(true, 1), nil).Once()
		f.vouchers.EXPECT().Create(mock.Anything, mock.MatchedBy(func(v *entity.Voucher) bool {
			return v.ProductID == 5 && v.UserID == 9 && v.Code == "VCH-000000000001"
		})).RunAndReturn(func(_ context.Context, v *entity.Voucher) error {
			v.ID = 100
			return nil
		}).Once()
		f.products.EXPECT().DecrementVoucherQuantity(mock.Anything, uint64(5)).Return(nil).Once()

		voucher, err := f.service.Claim(ctx, 5, 9)

		require.NoError(t, err)
		assert.Equal(t, uint64(100), voucher.ID)
	})

	t.Run("Disabled pool", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(false, 10), nil).Once()

		_, err := f.service.Claim(ctx, 5, 9)

		assert.ErrorIs(t, err, errs.ErrVoucherNotEnabled)
		assert.Equal(t, errs.ReasonVoucherNotEnabled, errs.Reason(err))
	})

	t.Run("Existing voucher is returned with the error", func(t *testing.T) {
		f := newFixture(t)
		existing := &entity.Voucher{ID: 3, ProductID: 5, UserID: 9, Code: "VCH-ABCDEF012345"}
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(true, 4), nil).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(existing, nil).Once()

		_, err := f.service.Claim(ctx, 5, 9)

		require.ErrorIs(t, err, errs.ErrVoucherAlreadyClaimed)
		var claimed *errs.AlreadyClaimedError
		require.True(t, errors.As(err, &claimed))
		assert.Equal(t, existing, claimed.Voucher)
		f.uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("Empty pool under the row lock", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(true, 1), nil).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(nil, errs.ErrVoucherNotFound).Once()
		f.products.EXPECT().GetByIDForUpdate(mock.Anything, uint64(5)).Return(pool(true, 0), nil).Once()

		_, err := f.service.Claim(ctx, 5, 9)

		assert.ErrorIs(t, err, errs.ErrVoucherExhausted)
		f.vouchers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Losing a same-user race reports the winner's voucher", func(t *testing.T) {
		f := newFixture(t)
		winner := &entity.Voucher{ID: 4, ProductID: 5, UserID: 9, Code: "VCH-ABCDEF012345"}
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(true, 2), nil).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(nil, errs.ErrVoucherNotFound).Once()
		f.products.EXPECT().GetByIDForUpdate(mock.Anything, uint64(5)).Return(pool(true, 1), nil).Once()
		f.vouchers.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrVoucherAlreadyClaimed).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(winner, nil).Once()

		_, err := f.service.Claim(ctx, 5, 9)

		var claimed *errs.AlreadyClaimedError
		require.True(t, errors.As(err, &claimed))
		assert.Equal(t, winner, claimed.Voucher)
		f.products.AssertNotCalled(t, "DecrementVoucherQuantity", mock.Anything, mock.Anything)
	})

	t.Run("Code collisions are retried then give up", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(5)).Return(pool(true, 2), nil).Once()
		f.vouchers.EXPECT().GetByProductAndUser(mock.Anything, uint64(5), uint64(9)).Return(nil, errs.ErrVoucherNotFound).Once()
		f.products.EXPECT().GetByIDForUpdate(mock.Anything, uint64(5)).Return(pool(true, 2), nil).Twice()
		f.vouchers.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrVoucherCodeCollision).Twice()

		_, err := f.service.Claim(ctx, 5, 9)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.NotErrorIs(t, err, errs.ErrVoucherCodeCollision)
	})

	t.Run("Rejects anonymous users and zero ids", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Claim(ctx, 5, 0)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = f.service.Claim(ctx, 0, 9)
		assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
	})
}

func TestListForUser(t *testing.T) {
	f := newFixture(t)
	list := []*entity.Voucher{{ID: 2}, {ID: 1}}
	f.vouchers.EXPECT().ListByUser(mock.Anything, uint64(9)).Return(list, nil).Once()

	got, err := f.service.ListForUser(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = f.service.ListForUser(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestGetForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads the voucher", func(t *testing.T) {
		f := newFixture(t)
		f.vouchers.EXPECT().GetByIDForUser(mock.Anything, uint64(4), uint64(9)).
			Return(&entity.Voucher{ID: 4, UserID: 9}, nil).Once()

		got, err := f.service.GetForUser(ctx, 4, 9)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), got.ID)
	})

	t.Run("Another user's voucher is not found", func(t *testing.T) {
		f := newFixture(t)
		f.vouchers.EXPECT().GetByIDForUser(mock.Anything, uint64(4), uint64(10)).
			Return(nil, errs.ErrVoucherNotFound).Once()

		_, err := f.service.GetForUser(ctx, 4, 10)
		assert.ErrorIs(t, err, errs.ErrVoucherNotFound)
	})

	t.Run("Input checks", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GetForUser(ctx, 4, 0)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = f.service.GetForUser(ctx, 0, 9)
		assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
	})
}

func TestNewService_DefaultsCodeAttempts(t *testing.T) {
	s := NewService(nil, nil, 0)
	assert.Equal(t, DefaultCodeAttempts, s.codeAttempts)
}
