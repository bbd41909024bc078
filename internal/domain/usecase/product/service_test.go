package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *persistencemocks.MockUnitOfWork
	products *persistencemocks.MockProductRepository
	vouchers *persistencemocks.MockVoucherRepository
	locks    *usecasemocks.MockEditLockUseCase
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		products: persistencemocks.NewMockProductRepository(t),
		vouchers: persistencemocks.NewMockVoucherRepository(t),
		locks:    usecasemocks.NewMockEditLockUseCase(t),
	}
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetProductRepository(mock.Anything).Return(f.products).Maybe()
	f.uow.EXPECT().GetVoucherRepository(mock.Anything).Return(f.vouchers).Maybe()
	f.locks.EXPECT().Kind().Return(entity.KindProduct).Maybe()

	f.service = NewService(f.uow, f.locks, log, 20, 100)
	return f
}

func TestNewService_RejectsCategoryLocks(t *testing.T) {
	locks := usecasemocks.NewMockEditLockUseCase(t)
	locks.EXPECT().Kind().Return(entity.KindCategory)

	assert.Panics(t, func() {
		NewService(persistencemocks.NewMockUnitOfWork(t), locks, coremocks.NewMockLogger(t), 20, 100)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a valid product", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Kettle" && p.Price.Equal(decimal.RequireFromString("19.99")) &&
				p.VoucherEnabled && p.VoucherQuantity == 3
		})).RunAndReturn(func(_ context.Context, p *entity.Product) error {
			p.ID = 11
			return nil
		}).Once()

		product, err := f.service.Create(ctx, usecase.CreateProductInput{
			Name:            " Kettle ",
			Slug:            "kettle",
			Price:           "19.99",
			VoucherEnabled:  true,
			VoucherQuantity: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(11), product.ID)
	})

	tests := []struct {
		name  string
		input usecase.CreateProductInput
		field string
	}{
		{"missing price", usecase.CreateProductInput{Name: "A", Slug: "a"}, "price"},
		{"malformed price", usecase.CreateProductInput{Name: "A", Slug: "a", Price: "ten"}, "price"},
		{"negative price", usecase.CreateProductInput{Name: "A", Slug: "a", Price: "-1"}, "price"},
		{"blank name", usecase.CreateProductInput{Name: "  ", Slug: "a", Price: "1"}, "name"},
		{"negative pool", usecase.CreateProductInput{Name: "A", Slug: "a", Price: "1", VoucherQuantity: -1}, "voucher_quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Create(ctx, tt.input)

			require.ErrorIs(t, err, errs.ErrInvalidRequest)
			var validation *errs.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.field, validation.Field)
			f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Duplicate slug is passed through", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateSlug).Once()

		_, err := f.service.Create(ctx, usecase.CreateProductInput{Name: "A", Slug: "a", Price: "1"})

		assert.ErrorIs(t, err, errs.ErrDuplicateSlug)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts the view and reports the claim", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Product{ID: 3, ViewCount: 4, VoucherEnabled: true, VoucherQuantity: 8}, nil).Once()
		f.products.EXPECT().IncrementViewCount(mock.Anything, uint64(3)).Return(nil).Once()
		f.vouchers.EXPECT().ExistsForProductAndUser(mock.Anything, uint64(3), uint64(9)).Return(true, nil).Once()

		detail, err := f.service.Get(ctx, 3, 9)

		require.NoError(t, err)
		assert.Equal(t, uint64(5), detail.Product.ViewCount)
		assert.Equal(t, int64(8), detail.AvailableVouchers)
		assert.True(t, detail.UserHasClaimed)
	})

	t.Run("Disabled pool shows no vouchers", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Product{ID: 3, VoucherQuantity: 8}, nil).Once()
		f.products.EXPECT().IncrementViewCount(mock.Anything, uint64(3)).Return(nil).Once()

		detail, err := f.service.Get(ctx, 3, 0)

		require.NoError(t, err)
		assert.Zero(t, detail.AvailableVouchers)
		assert.False(t, detail.UserHasClaimed)
	})

	t.Run("A failed view count does not fail the read", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Product{ID: 3, ViewCount: 4}, nil).Once()
		f.products.EXPECT().IncrementViewCount(mock.Anything, uint64(3)).Return(errs.ErrConcurrentUpdate).Once()

		detail, err := f.service.Get(ctx, 3, 0)

		require.NoError(t, err)
		assert.Equal(t, uint64(4), detail.Product.ViewCount)
	})

	t.Run("Unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrProductNotFound).Once()

		_, err := f.service.Get(ctx, 3, 0)

		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("Zero id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Get(ctx, 0, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
	})
}

func TestList_ClampsPage(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().List(mock.Anything, persistence.ListOptions{Limit: 20, Offset: 0}).Return(nil, nil).Once()
	f.products.EXPECT().List(mock.Anything, persistence.ListOptions{Limit: 100, Offset: 40}).Return(nil, nil).Once()

	_, err := f.service.List(context.Background(), usecase.Page{Offset: -5})
	require.NoError(t, err)
	_, err = f.service.List(context.Background(), usecase.Page{Limit: 1000, Offset: 40})
	require.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	guarded := func(f *fixture) {
		f.locks.EXPECT().GuardedUpdate(mock.Anything, uint64(3), uint64(9), mock.Anything).
			RunAndReturn(func(ctx context.Context, _, _ uint64, mutate func(context.Context) error) error {
				return mutate(ctx)
			}).Once()
	}

	t.Run("Applies the set fields and returns an unlocked product", func(t *testing.T) {
		f := newFixture(t)
		guarded(f)
		stored := &entity.Product{ID: 3, Name: "Old", Slug: "old", Price: decimal.NewFromInt(5), CategoryIDs: []uint64{1}}
		stored.Grant(9, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).Return(stored, nil).Once()
		f.products.EXPECT().Update(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "New" && p.Slug == "old" && p.Price.Equal(decimal.RequireFromString("7.50")) &&
				len(p.CategoryIDs) == 0 && p.VoucherEnabled
		})).Return(nil).Once()

		name, price, enabled := "New", "7.5", true
		categories := []uint64{}
		updated, err := f.service.Update(ctx, 3, 9, usecase.UpdateProductInput{
			Name:           &name,
			Price:          &price,
			CategoryIDs:    &categories,
			VoucherEnabled: &enabled,
		})

		require.NoError(t, err)
		assert.False(t, updated.EditLock.IsSet())
	})

	t.Run("Invalid input leaves the row alone", func(t *testing.T) {
		f := newFixture(t)
		guarded(f)
		f.products.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.Product{ID: 3, Name: "Old", Slug: "old"}, nil).Once()

		slug := "Not A Slug"
		_, err := f.service.Update(ctx, 3, 9, usecase.UpdateProductInput{Slug: &slug})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Locked by someone else", func(t *testing.T) {
		f := newFixture(t)
		conflict := errs.NewEditLockConflictError("product", 3, 4, time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC))
		f.locks.EXPECT().GuardedUpdate(mock.Anything, uint64(3), uint64(9), mock.Anything).Return(conflict).Once()

		name := "New"
		_, err := f.service.Update(ctx, 3, 9, usecase.UpdateProductInput{Name: &name})

		assert.ErrorIs(t, err, errs.ErrEditLocked)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.locks.EXPECT().GuardedDelete(mock.Anything, uint64(3), uint64(9)).Return(nil).Once()

	require.NoError(t, f.service.Delete(context.Background(), 3, 9))
}
