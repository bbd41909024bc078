package category

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow        *persistencemocks.MockUnitOfWork
	categories *persistencemocks.MockCategoryRepository
	locks      *usecasemocks.MockEditLockUseCase
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:        persistencemocks.NewMockUnitOfWork(t),
		categories: persistencemocks.NewMockCategoryRepository(t),
		locks:      usecasemocks.NewMockEditLockUseCase(t),
	}
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetCategoryRepository(mock.Anything).Return(f.categories).Maybe()
	f.locks.EXPECT().Kind().Return(entity.KindCategory).Maybe()
	f.locks.EXPECT().GuardedUpdate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ uint64, mutate func(context.Context) error) error {
			return mutate(ctx)
		}).Maybe()

	f.service = NewService(f.uow, f.locks, log, 20, 100)
	return f
}

func parent(id uint64) *uint64 { return &id }

// tree stores 1 <- 2 <- 3, where 3 is the deepest category
func (f *fixture) tree() {
	f.categories.EXPECT().GetByID(mock.Anything, uint64(1)).
		RunAndReturn(func(context.Context, uint64) (*entity.Category, error) {
			return &entity.Category{ID: 1, Name: "Root", Slug: "root"}, nil
		}).Maybe()
	f.categories.EXPECT().GetByID(mock.Anything, uint64(2)).
		RunAndReturn(func(context.Context, uint64) (*entity.Category, error) {
			return &entity.Category{ID: 2, Name: "Mid", Slug: "mid", ParentID: parent(1)}, nil
		}).Maybe()
	f.categories.EXPECT().GetByID(mock.Anything, uint64(3)).
		RunAndReturn(func(context.Context, uint64) (*entity.Category, error) {
			return &entity.Category{ID: 3, Name: "Leaf", Slug: "leaf", ParentID: parent(2)}, nil
		}).Maybe()
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	f.categories.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Name == "Books" && *c.ParentID == 1
	})).RunAndReturn(func(_ context.Context, c *entity.Category) error {
		c.ID = 5
		return nil
	}).Once()

	category, err := f.service.Create(context.Background(), usecase.CreateCategoryInput{
		Name:     "Books",
		Slug:     "books",
		ParentID: parent(1),
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(5), category.ID)

	_, err = f.service.Create(context.Background(), usecase.CreateCategoryInput{Name: "Books", Slug: "Books!"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestUpdate_Reparent(t *testing.T) {
	ctx := context.Background()

	t.Run("Moving a root under a leaf of its own subtree is refused", func(t *testing.T) {
		f := newFixture(t)
		f.tree()

		_, err := f.service.Update(ctx, 1, 9, usecase.UpdateCategoryInput{ParentID: parent(3)})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Own parent is refused", func(t *testing.T) {
		f := newFixture(t)
		f.tree()

		_, err := f.service.Update(ctx, 2, 9, usecase.UpdateCategoryInput{ParentID: parent(2)})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Moving a leaf to the root is allowed", func(t *testing.T) {
		f := newFixture(t)
		f.tree()
		f.categories.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
			return c.ID == 3 && *c.ParentID == 1
		})).Return(nil).Once()

		updated, err := f.service.Update(ctx, 3, 9, usecase.UpdateCategoryInput{ParentID: parent(1)})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), *updated.ParentID)
	})

	t.Run("ClearParent detaches the category", func(t *testing.T) {
		f := newFixture(t)
		f.tree()
		f.categories.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
			return c.ID == 2 && c.ParentID == nil
		})).Return(nil).Once()

		updated, err := f.service.Update(ctx, 2, 9, usecase.UpdateCategoryInput{ClearParent: true})

		require.NoError(t, err)
		assert.Nil(t, updated.ParentID)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		f := newFixture(t)
		f.tree()
		f.categories.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrCategoryNotFound).Once()

		_, err := f.service.Update(ctx, 2, 9, usecase.UpdateCategoryInput{ParentID: parent(42)})

		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}

func TestGet_ZeroID(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Get(context.Background(), 0)

	assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.locks.EXPECT().GuardedDelete(mock.Anything, uint64(2), uint64(9)).Return(errs.ErrEditLocked).Once()

	assert.ErrorIs(t, f.service.Delete(context.Background(), 2, 9), errs.ErrEditLocked)
}
