package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (context.Context, persistence.UnitOfWork) {
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	return context.Background(), testDB.UnitOfWork()
}

func newProduct(t *testing.T, slug string, categoryIDs ...uint64) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct("Product "+slug, slug, "", decimal.RequireFromString("12.345"), categoryIDs, true, 2)
	require.NoError(t, err)
	return p
}

func newCategory(t *testing.T, slug string, parentID *uint64) *entity.Category {
	t.Helper()
	c, err := entity.NewCategory("Category "+slug, slug, "", parentID)
	require.NoError(t, err)
	return c
}

func TestProductRepository(t *testing.T) {
	ctx, uow := setup(t)
	categories := uow.GetCategoryRepository(ctx)
	products := uow.GetProductRepository(ctx)

	books := newCategory(t, "books", nil)
	require.NoError(t, categories.Create(ctx, books))
	music := newCategory(t, "music", nil)
	require.NoError(t, categories.Create(ctx, music))

	product := newProduct(t, "atlas", music.ID, books.ID, books.ID)
	require.NoError(t, products.Create(ctx, product))
	require.NotZero(t, product.ID)

	t.Run("Reads back price and sorted category links", func(t *testing.T) {
		stored, err := products.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "12.35", stored.Price.StringFixed(entity.PriceScale))
		assert.Equal(t, []uint64{books.ID, music.ID}, stored.CategoryIDs)
		assert.False(t, stored.EditLock.IsSet())
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		err := products.Create(ctx, newProduct(t, "atlas"))
		assert.ErrorIs(t, err, errs.ErrDuplicateSlug)
	})

	t.Run("Unknown category", func(t *testing.T) {
		err := products.Create(ctx, newProduct(t, "orphan", 999))
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, err := products.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		assert.ErrorIs(t, products.IncrementViewCount(ctx, 999), errs.ErrProductNotFound)
	})

	t.Run("Update replaces links and keeps the pool", func(t *testing.T) {
		stored, err := products.GetByID(ctx, product.ID)
		require.NoError(t, err)
		stored.Name = "Atlas of the World"
		stored.CategoryIDs = []uint64{music.ID}
		stored.VoucherQuantity = 100
		require.NoError(t, products.Update(ctx, stored))

		reread, err := products.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Atlas of the World", reread.Name)
		assert.Equal(t, []uint64{music.ID}, reread.CategoryIDs)
		assert.Equal(t, int64(2), reread.VoucherQuantity)
	})

	t.Run("View counter", func(t *testing.T) {
		require.NoError(t, products.IncrementViewCount(ctx, product.ID))
		require.NoError(t, products.IncrementViewCount(ctx, product.ID))

		stored, err := products.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), stored.ViewCount)
	})

	t.Run("Voucher pool never goes negative", func(t *testing.T) {
		require.NoError(t, products.DecrementVoucherQuantity(ctx, product.ID))
		require.NoError(t, products.DecrementVoucherQuantity(ctx, product.ID))
		assert.ErrorIs(t, products.DecrementVoucherQuantity(ctx, product.ID), errs.ErrVoucherExhausted)

		stored, err := products.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.VoucherQuantity)
	})

	t.Run("List pages by id", func(t *testing.T) {
		require.NoError(t, products.Create(ctx, newProduct(t, "globe")))

		page, err := products.List(ctx, persistence.ListOptions{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "globe", page[0].Slug)
		assert.Equal(t, []uint64{}, page[0].CategoryIDs)
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx, uow := setup(t)
	categories := uow.GetCategoryRepository(ctx)

	root := newCategory(t, "root", nil)
	require.NoError(t, categories.Create(ctx, root))
	child := newCategory(t, "child", &root.ID)
	require.NoError(t, categories.Create(ctx, child))

	t.Run("Duplicate slug", func(t *testing.T) {
		assert.ErrorIs(t, categories.Create(ctx, newCategory(t, "root", nil)), errs.ErrDuplicateSlug)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		missing := uint64(999)
		assert.ErrorIs(t, categories.Create(ctx, newCategory(t, "lost", &missing)), errs.ErrCategoryNotFound)
	})

	t.Run("Deleting a parent detaches its children", func(t *testing.T) {
		require.NoError(t, uow.GetLockableRepository(ctx, entity.KindCategory).Delete(ctx, root.ID))

		stored, err := categories.GetByID(ctx, child.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.ParentID)

		_, err = categories.GetByID(ctx, root.ID)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}

func TestVoucherRepository(t *testing.T) {
	ctx, uow := setup(t)
	products := uow.GetProductRepository(ctx)
	vouchers := uow.GetVoucherRepository(ctx)

	first := newProduct(t, "first")
	require.NoError(t, products.Create(ctx, first))
	second := newProduct(t, "second")
	require.NoError(t, products.Create(ctx, second))

	v := &entity.Voucher{ProductID: first.ID, UserID: 7, Code: "VCH-000000000001"}
	require.NoError(t, vouchers.Create(ctx, v))
	require.NotZero(t, v.ID)
	require.NoError(t, vouchers.Create(ctx, &entity.Voucher{ProductID: second.ID, UserID: 7, Code: "VCH-000000000002"}))

	t.Run("Second claim of the same user", func(t *testing.T) {
		err := vouchers.Create(ctx, &entity.Voucher{ProductID: first.ID, UserID: 7, Code: "VCH-000000000003"})
		assert.ErrorIs(t, err, errs.ErrVoucherAlreadyClaimed)
	})

	t.Run("Code collision", func(t *testing.T) {
		err := vouchers.Create(ctx, &entity.Voucher{ProductID: first.ID, UserID: 8, Code: "VCH-000000000001"})
		assert.ErrorIs(t, err, errs.ErrVoucherCodeCollision)
	})

	t.Run("Unknown product", func(t *testing.T) {
		err := vouchers.Create(ctx, &entity.Voucher{ProductID: 999, UserID: 8, Code: "VCH-000000000009"})
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("Lookups", func(t *testing.T) {
		got, err := vouchers.GetByProductAndUser(ctx, first.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, v.Code, got.Code)

		_, err = vouchers.GetByProductAndUser(ctx, first.ID, 8)
		assert.ErrorIs(t, err, errs.ErrVoucherNotFound)

		exists, err := vouchers.ExistsForProductAndUser(ctx, second.ID, 7)
		require.NoError(t, err)
		assert.True(t, exists)

		list, err := vouchers.ListByUser(ctx, 7)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "VCH-000000000002", list[0].Code)
	})

	t.Run("Lookup by id is scoped to the owner", func(t *testing.T) {
		got, err := vouchers.GetByIDForUser(ctx, v.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ProductID)

		_, err = vouchers.GetByIDForUser(ctx, v.ID, 8)
		assert.ErrorIs(t, err, errs.ErrVoucherNotFound)
	})

	t.Run("Deleting the product removes its vouchers", func(t *testing.T) {
		require.NoError(t, uow.GetLockableRepository(ctx, entity.KindProduct).Delete(ctx, first.ID))

		list, err := vouchers.ListByUser(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestCommentRepository(t *testing.T) {
	ctx, uow := setup(t)
	products := uow.GetProductRepository(ctx)
	comments := uow.GetCommentRepository(ctx)

	lamp := newProduct(t, "lamp")
	require.NoError(t, products.Create(ctx, lamp))
	desk := newProduct(t, "desk")
	require.NoError(t, products.Create(ctx, desk))

	post := func(productID, userID uint64, body string) *entity.Comment {
		t.Helper()
		c, err := entity.NewComment(productID, userID, body)
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, c))
		require.NotZero(t, c.ID)
		return c
	}

	first := post(lamp.ID, 7, "bright")
	second := post(lamp.ID, 8, "too bright")
	post(desk.ID, 7, "wobbly")

	t.Run("Unknown product", func(t *testing.T) {
		err := comments.Create(ctx, &entity.Comment{ProductID: 999, UserID: 7, Body: "ghost"})
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("Read back", func(t *testing.T) {
		got, err := comments.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "bright", got.Body)
		assert.Equal(t, uint64(7), got.UserID)

		_, err = comments.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, errs.ErrCommentNotFound)
	})

	t.Run("List filters and keeps posting order", func(t *testing.T) {
		onLamp, err := comments.List(ctx, persistence.CommentFilter{ProductID: lamp.ID}, 0, 0)
		require.NoError(t, err)
		require.Len(t, onLamp, 2)
		assert.Equal(t, first.ID, onLamp[0].ID)
		assert.Equal(t, second.ID, onLamp[1].ID)

		byUser, err := comments.List(ctx, persistence.CommentFilter{UserID: 7}, 0, 0)
		require.NoError(t, err)
		assert.Len(t, byUser, 2)

		paged, err := comments.List(ctx, persistence.CommentFilter{}, 1, 1)
		require.NoError(t, err)
		require.Len(t, paged, 1)
		assert.Equal(t, second.ID, paged[0].ID)
	})

	t.Run("UpdateBody", func(t *testing.T) {
		first.Body = "very bright"
		require.NoError(t, comments.UpdateBody(ctx, first))

		got, err := comments.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "very bright", got.Body)

		err = comments.UpdateBody(ctx, &entity.Comment{ID: 9999, Body: "x"})
		assert.ErrorIs(t, err, errs.ErrCommentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, comments.Delete(ctx, second.ID))
		assert.ErrorIs(t, comments.Delete(ctx, second.ID), errs.ErrCommentNotFound)
	})

	t.Run("Deleting the product removes its comments", func(t *testing.T) {
		require.NoError(t, uow.GetLockableRepository(ctx, entity.KindProduct).Delete(ctx, lamp.ID))

		left, err := comments.List(ctx, persistence.CommentFilter{}, 0, 0)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, desk.ID, left[0].ProductID)
	})
}

func TestLockableRepository(t *testing.T) {
	ctx, uow := setup(t)
	products := uow.GetProductRepository(ctx)
	locks := uow.GetLockableRepository(ctx, entity.KindProduct)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	ids := make([]uint64, 0, 3)
	for _, slug := range []string{"a", "b", "c"} {
		p := newProduct(t, slug)
		require.NoError(t, products.Create(ctx, p))
		ids = append(ids, p.ID)
	}

	t.Run("Save and read back", func(t *testing.T) {
		var lock entity.EditLock
		expiry := lock.Grant(7, now)
		require.NoError(t, locks.SaveLock(ctx, ids[0], lock))

		stored, err := locks.FindLockForUpdate(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, uint64(7), stored.Holder())
		assert.True(t, expiry.Equal(stored.ExpiresAt()))
	})

	t.Run("Half-set lease is refused", func(t *testing.T) {
		user := uint64(7)
		err := locks.SaveLock(ctx, ids[1], entity.EditLock{EditingUser: &user})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("Unknown row", func(t *testing.T) {
		_, err := locks.FindLock(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		assert.ErrorIs(t, locks.SaveLock(ctx, 999, entity.EditLock{}), errs.ErrProductNotFound)
		assert.ErrorIs(t, locks.Delete(ctx, 999), errs.ErrProductNotFound)
	})

	t.Run("ClearLocksHeldBy touches only that user's rows", func(t *testing.T) {
		var mine, theirs entity.EditLock
		mine.Grant(7, now.Add(-time.Hour))
		theirs.Grant(8, now)
		require.NoError(t, locks.SaveLock(ctx, ids[1], mine))
		require.NoError(t, locks.SaveLock(ctx, ids[2], theirs))

		cleared, err := locks.ClearLocksHeldBy(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(2), cleared)

		for _, id := range ids[:2] {
			lock, err := locks.FindLock(ctx, id)
			require.NoError(t, err)
			assert.False(t, lock.IsSet())
		}
		lock, err := locks.FindLock(ctx, ids[2])
		require.NoError(t, err)
		assert.Equal(t, uint64(8), lock.Holder())
	})

	t.Run("Category repository serves its own table", func(t *testing.T) {
		categoryLocks := uow.GetLockableRepository(ctx, entity.KindCategory)
		assert.Equal(t, entity.KindCategory, categoryLocks.Kind())

		_, err := categoryLocks.FindLock(ctx, ids[0])
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}
