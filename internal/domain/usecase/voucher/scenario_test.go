package voucher_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/voucher"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) persistence.UnitOfWork {
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	return testDB.UnitOfWork()
}

func createProduct(t *testing.T, uow persistence.UnitOfWork, slug string, enabled bool, quantity int64) uint64 {
	t.Helper()
	product, err := entity.NewProduct("Gift "+slug, slug, "", decimal.RequireFromString("9.90"), nil, enabled, quantity)
	require.NoError(t, err)
	require.NoError(t, uow.GetProductRepository(context.Background()).Create(context.Background(), product))
	return product.ID
}

func remaining(t *testing.T, uow persistence.UnitOfWork, productID uint64) int64 {
	t.Helper()
	product, err := uow.GetProductRepository(context.Background()).GetByID(context.Background(), productID)
	require.NoError(t, err)
	return product.VoucherQuantity
}

// claimAll runs one claim per user concurrently and returns the errors in user order
func claimAll(service *voucher.Service, productID uint64, users []uint64) []error {
	results := make([]error, len(users))
	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user uint64) {
			defer wg.Done()
			_, results[i] = service.Claim(context.Background(), productID, user)
		}(i, user)
	}
	wg.Wait()
	return results
}

func count(results []error, target error) int {
	n := 0
	for _, err := range results {
		if target == nil && err == nil || target != nil && errors.Is(err, target) {
			n++
		}
	}
	return n
}

func TestClaim_LastVoucherGoesToOneUser(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)
	productID := createProduct(t, uow, "last-one", true, 1)

	results := claimAll(service, productID, []uint64{1, 2})

	assert.Equal(t, 1, count(results, nil))
	assert.Equal(t, 1, count(results, errs.ErrVoucherExhausted))
	assert.Equal(t, int64(0), remaining(t, uow, productID))
}

func TestClaim_PoolIsNeverOversold(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)
	productID := createProduct(t, uow, "two-left", true, 2)

	results := claimAll(service, productID, []uint64{1, 2, 3})

	assert.Equal(t, 2, count(results, nil))
	assert.Equal(t, 1, count(results, errs.ErrVoucherExhausted))
	assert.Equal(t, int64(0), remaining(t, uow, productID))

	issued := 0
	for _, user := range []uint64{1, 2, 3} {
		list, err := service.ListForUser(context.Background(), user)
		require.NoError(t, err)
		issued += len(list)
	}
	assert.Equal(t, 2, issued)
}

func TestClaim_SameUserTwice(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)
	productID := createProduct(t, uow, "once-only", true, 5)

	first, err := service.Claim(context.Background(), productID, 7)
	require.NoError(t, err)
	assert.Regexp(t, `^VCH-[0-9A-F]{12}$`, first.Code)

	_, err = service.Claim(context.Background(), productID, 7)
	require.ErrorIs(t, err, errs.ErrVoucherAlreadyClaimed)

	var claimed *errs.AlreadyClaimedError
	require.True(t, errors.As(err, &claimed))
	existing, ok := claimed.Voucher.(*entity.Voucher)
	require.True(t, ok)
	assert.Equal(t, first.Code, existing.Code)
	assert.Equal(t, int64(4), remaining(t, uow, productID))
}

func TestClaim_SameUserConcurrently(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)
	productID := createProduct(t, uow, "double-tap", true, 5)

	results := claimAll(service, productID, []uint64{7, 7, 7})

	assert.Equal(t, 1, count(results, nil))
	assert.Equal(t, 2, count(results, errs.ErrVoucherAlreadyClaimed))
	assert.Equal(t, int64(4), remaining(t, uow, productID))
}

func TestClaim_DisabledPool(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)
	productID := createProduct(t, uow, "no-vouchers", false, 10)

	_, err := service.Claim(context.Background(), productID, 1)

	assert.ErrorIs(t, err, errs.ErrVoucherNotEnabled)
	assert.Equal(t, int64(10), remaining(t, uow, productID))
}

func TestClaim_UnknownProduct(t *testing.T) {
	uow := setup(t)
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3)

	_, err := service.Claim(context.Background(), 404, 1)

	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestClaim_CodeCollisionIsRetried(t *testing.T) {
	uow := setup(t)
	const taken = "VCH-AAAAAAAAAAAA"

	other := createProduct(t, uow, "other", true, 1)
	require.NoError(t, uow.GetVoucherRepository(context.Background()).Create(context.Background(),
		&entity.Voucher{ProductID: other, UserID: 99, Code: taken}))

	codes := []string{taken, "VCH-BBBBBBBBBBBB"}
	var mu sync.Mutex
	service := voucher.NewService(uow, logger.NewNoopLogger(), 3).WithCodeGenerator(func() string {
		mu.Lock()
		defer mu.Unlock()
		code := codes[0]
		if len(codes) > 1 {
			codes = codes[1:]
		}
		return code
	})
	productID := createProduct(t, uow, "lucky", true, 1)

	claimed, err := service.Claim(context.Background(), productID, 1)

	require.NoError(t, err)
	assert.Equal(t, "VCH-BBBBBBBBBBBB", claimed.Code)
	assert.Equal(t, int64(0), remaining(t, uow, productID))
}

func TestClaim_CodeSpaceExhausted(t *testing.T) {
	uow := setup(t)
	const taken = "VCH-AAAAAAAAAAAA"

	other := createProduct(t, uow, "other", true, 1)
	require.NoError(t, uow.GetVoucherRepository(context.Background()).Create(context.Background(),
		&entity.Voucher{ProductID: other, UserID: 99, Code: taken}))

	service := voucher.NewService(uow, logger.NewNoopLogger(), 2).WithCodeGenerator(func() string { return taken })
	productID := createProduct(t, uow, "unlucky", true, 3)

	_, err := service.Claim(context.Background(), productID, 1)

	assert.ErrorIs(t, err, errs.ErrInternalServer)
	assert.Equal(t, int64(3), remaining(t, uow, productID))
}
