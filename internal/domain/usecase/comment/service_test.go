package comment

import (
	"context"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/catalog-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/catalog-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uow      *persistencemocks.MockUnitOfWork
	comments *persistencemocks.MockCommentRepository
	logger   *coremocks.MockLogger
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		comments: persistencemocks.NewMockCommentRepository(t),
		logger:   coremocks.NewMockLogger(t),
	}
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetCommentRepository(mock.Anything).Return(f.comments).Maybe()

	f.service = NewService(f.uow, f.logger, 20, 100)
	return f
}

// stored makes GetByID return a fresh copy of a comment written by owner
func (f *fixture) stored(id, owner uint64) {
	f.comments.EXPECT().GetByID(mock.Anything, id).
		RunAndReturn(func(context.Context, uint64) (*entity.Comment, error) {
			return &entity.Comment{ID: id, ProductID: 9, UserID: owner, Body: "first"}, nil
		}).Once()
}

func TestCreate(t *testing.T) {
	t.Run("Stores trimmed body", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.ProductID == 9 && c.UserID == 4 && c.Body == "nice lamp"
		})).RunAndReturn(func(_ context.Context, c *entity.Comment) error {
			c.ID = 11
			return nil
		}).Once()

		comment, err := f.service.Create(context.Background(), 9, 4, "  nice lamp ")
		require.NoError(t, err)
		assert.Equal(t, uint64(11), comment.ID)
	})

	t.Run("Anonymous caller", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(context.Background(), 9, 0, "hello")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Blank body", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(context.Background(), 9, 4, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Body over the limit", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(context.Background(), 9, 4, strings.Repeat("a", entity.MaxCommentLength+1))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrProductNotFound).Once()
		_, err := f.service.Create(context.Background(), 404, 4, "hello")
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Owner replaces the body", func(t *testing.T) {
		f := newFixture(t)
		f.stored(3, 4)
		f.comments.EXPECT().UpdateBody(mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.ID == 3 && c.Body == "second"
		})).Return(nil).Once()

		comment, err := f.service.Update(context.Background(), 3, 4, "second")
		require.NoError(t, err)
		assert.Equal(t, "second", comment.Body)
	})

	t.Run("Another user is refused", func(t *testing.T) {
		f := newFixture(t)
		f.stored(3, 4)
		f.logger.EXPECT().Warn("Comment change refused", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["owner_id"] == uint64(4) && fields["user_id"] == uint64(5)
		})).Once()

		_, err := f.service.Update(context.Background(), 3, 5, "hijacked")
		require.ErrorIs(t, err, errs.ErrNotOwner)

		var ownership *errs.OwnershipError
		require.ErrorAs(t, err, &ownership)
		assert.Equal(t, uint64(4), ownership.Owner)
		f.comments.AssertNotCalled(t, "UpdateBody", mock.Anything, mock.Anything)
	})

	t.Run("Invalid body leaves the row alone", func(t *testing.T) {
		f := newFixture(t)
		f.stored(3, 4)
		_, err := f.service.Update(context.Background(), 3, 4, "")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.comments.AssertNotCalled(t, "UpdateBody", mock.Anything, mock.Anything)
	})

	t.Run("Missing comment", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, errs.ErrCommentNotFound).Once()
		_, err := f.service.Update(context.Background(), 8, 4, "text")
		assert.ErrorIs(t, err, errs.ErrCommentNotFound)
	})

	t.Run("Zero id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Update(context.Background(), 0, 4, "text")
		assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Owner deletes", func(t *testing.T) {
		f := newFixture(t)
		f.stored(3, 4)
		f.comments.EXPECT().Delete(mock.Anything, uint64(3)).Return(nil).Once()

		require.NoError(t, f.service.Delete(context.Background(), 3, 4))
	})

	t.Run("Another user is refused", func(t *testing.T) {
		f := newFixture(t)
		f.stored(3, 4)
		f.logger.EXPECT().Warn("Comment change refused", mock.Anything).Once()

		err := f.service.Delete(context.Background(), 3, 5)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		f.comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Anonymous caller", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.service.Delete(context.Background(), 3, 0), errs.ErrUnauthenticated)
	})
}

func TestList_ClampsPage(t *testing.T) {
	f := newFixture(t)
	filter := persistence.CommentFilter{ProductID: 9}
	f.comments.EXPECT().List(mock.Anything, filter, 100, 0).
		Return([]*entity.Comment{{ID: 1}, {ID: 2}}, nil).Once()

	comments, err := f.service.List(context.Background(), filter, usecase.Page{Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestGet_ZeroID(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Get(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
}
