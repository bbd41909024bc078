package editlock_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/editlock"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// manualClock is a TimeProvider the test moves forward by hand
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *manualClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

type scenario struct {
	clock    *manualClock
	db       *gorm.DB
	uow      persistence.UnitOfWork
	products *editlock.Manager
	product  uint64
}

func newScenario(t *testing.T) *scenario {
	clock := &manualClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	testDB := database.NewTestDBManagerWithClock(t, logger.NewNoopLogger(), clock)
	db := testDB.Connect(t)
	uow := testDB.UnitOfWork()

	product, err := entity.NewProduct("Desk Lamp", "desk-lamp", "", decimal.RequireFromString("25.00"), nil, false, 0)
	require.NoError(t, err)
	require.NoError(t, uow.GetProductRepository(context.Background()).Create(context.Background(), product))

	return &scenario{
		clock:    clock,
		db:       db,
		uow:      uow,
		products: editlock.NewManager(entity.KindProduct, uow, clock, logger.NewNoopLogger()),
		product:  product.ID,
	}
}

// storedLock reads the lease columns as stored, bypassing the repository mapping
func (s *scenario) storedLock(t *testing.T) entity.EditLock {
	t.Helper()

	var row struct {
		EditingUserID *uint64
		EditLockTime  *time.Time
	}
	err := s.db.Table("products").
		Select("editing_user_id", "edit_lock_time").
		Where("id = ?", s.product).
		Scan(&row).Error
	require.NoError(t, err)
	require.Equal(t, row.EditingUserID == nil, row.EditLockTime == nil,
		"editing_user_id and edit_lock_time must be set together: user=%v time=%v", row.EditingUserID, row.EditLockTime)

	return entity.EditLock{EditingUser: row.EditingUserID, EditLockTime: row.EditLockTime}
}

// halfSetRows counts product rows with exactly one lease column set
func (s *scenario) halfSetRows(t *testing.T) int64 {
	t.Helper()

	var count int64
	err := s.db.Table("products").
		Where("(editing_user_id IS NULL) <> (edit_lock_time IS NULL)").
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestScenario_SecondUserIsRefused(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	first, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	_, err = s.products.Acquire(ctx, s.product, 2)
	require.ErrorIs(t, err, errs.ErrEditLocked)

	lock := s.storedLock(t)
	assert.Equal(t, uint64(1), lock.Holder())
	assert.True(t, first.ExpiresAt.Equal(lock.ExpiresAt()))
}

func TestScenario_RenewalExtendsExpiry(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	first, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	s.clock.Advance(time.Minute)
	second, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	assert.True(t, second.Renewed)
	assert.True(t, second.ExpiresAt.After(first.ExpiresAt))
	assert.True(t, second.ExpiresAt.Equal(s.storedLock(t).ExpiresAt()))
}

func TestScenario_ExpiredLeaseIsTakenOver(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	s.clock.Advance(entity.EditLockDuration)

	result, err := s.products.Acquire(ctx, s.product, 2)
	require.NoError(t, err)
	assert.False(t, result.Renewed)
	assert.Equal(t, uint64(2), s.storedLock(t).Holder())
}

func TestScenario_StatusClearsExpiredLease(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	status, err := s.products.Status(ctx, s.product, 2)
	require.NoError(t, err)
	assert.False(t, status.CanEdit)

	s.clock.Advance(entity.EditLockDuration + time.Second)

	status, err = s.products.Status(ctx, s.product, 2)
	require.NoError(t, err)
	assert.True(t, status.CanEdit)
	assert.Nil(t, status.EditingUser)
	assert.False(t, s.storedLock(t).IsSet())
}

func TestScenario_ReleaseRules(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	err = s.products.Release(ctx, s.product, 2)
	require.ErrorIs(t, err, errs.ErrLockNotHeld)
	assert.Equal(t, uint64(1), s.storedLock(t).Holder())

	require.NoError(t, s.products.Release(ctx, s.product, 1))
	assert.False(t, s.storedLock(t).IsSet())

	// Releasing again is a no-op
	require.NoError(t, s.products.Release(ctx, s.product, 1))
	require.NoError(t, s.products.Release(ctx, s.product, 2))
}

func TestScenario_GuardedUpdate(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	rename := func(name string) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			repo := s.uow.GetProductRepository(ctx)
			p, err := repo.GetByID(ctx, s.product)
			if err != nil {
				return err
			}
			p.Name = name
			return repo.Update(ctx, p)
		}
	}

	err = s.products.GuardedUpdate(ctx, s.product, 2, rename("Stolen"))
	require.ErrorIs(t, err, errs.ErrEditLocked)

	p, err := s.uow.GetProductRepository(ctx).GetByID(ctx, s.product)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", p.Name)

	require.NoError(t, s.products.GuardedUpdate(ctx, s.product, 1, rename("Desk Lamp Pro")))

	p, err = s.uow.GetProductRepository(ctx).GetByID(ctx, s.product)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp Pro", p.Name)
	assert.False(t, s.storedLock(t).IsSet())
}

func TestScenario_GuardedDeleteAndReleaseAll(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	_, err := s.products.Acquire(ctx, s.product, 1)
	require.NoError(t, err)

	require.ErrorIs(t, s.products.GuardedDelete(ctx, s.product, 2), errs.ErrEditLocked)

	count, err := s.products.ReleaseAllForUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.False(t, s.storedLock(t).IsSet())

	require.NoError(t, s.products.GuardedDelete(ctx, s.product, 2))

	_, err = s.products.Status(ctx, s.product, 2)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestScenario_LeaseColumnsStayPaired(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	noop := func(context.Context) error { return nil }
	steps := []struct {
		name string
		run  func() error
		held uint64
	}{
		{"acquire", func() error { _, err := s.products.Acquire(ctx, s.product, 1); return err }, 1},
		{"conflicting acquire", func() error { _, err := s.products.Acquire(ctx, s.product, 2); return ignore(err, errs.ErrEditLocked) }, 1},
		{"renew", func() error { _, err := s.products.Acquire(ctx, s.product, 1); return err }, 1},
		{"status while active", func() error { _, err := s.products.Status(ctx, s.product, 2); return err }, 1},
		{"forbidden release", func() error { return ignore(s.products.Release(ctx, s.product, 2), errs.ErrLockNotHeld) }, 1},
		{"refused update", func() error { return ignore(s.products.GuardedUpdate(ctx, s.product, 2, noop), errs.ErrEditLocked) }, 1},
		{"expire and status", func() error {
			s.clock.Advance(entity.EditLockDuration)
			_, err := s.products.Status(ctx, s.product, 2)
			return err
		}, 0},
		{"acquire by other user", func() error { _, err := s.products.Acquire(ctx, s.product, 2); return err }, 2},
		{"guarded update", func() error { return s.products.GuardedUpdate(ctx, s.product, 2, noop) }, 0},
		{"acquire again", func() error { _, err := s.products.Acquire(ctx, s.product, 1); return err }, 1},
		{"release", func() error { return s.products.Release(ctx, s.product, 1) }, 0},
		{"acquire before bulk release", func() error { _, err := s.products.Acquire(ctx, s.product, 1); return err }, 1},
		{"release all", func() error { _, err := s.products.ReleaseAllForUser(ctx, 1); return err }, 0},
	}

	for _, step := range steps {
		require.NoError(t, step.run(), step.name)
		assert.Zero(t, s.halfSetRows(t), step.name)
		assert.Equal(t, step.held, s.storedLock(t).Holder(), step.name)
	}
}

func TestScenario_HalfSetRowIsDetected(t *testing.T) {
	s := newScenario(t)

	require.NoError(t, s.db.Exec("UPDATE products SET editing_user_id = ? WHERE id = ?", 7, s.product).Error)

	assert.Equal(t, int64(1), s.halfSetRows(t))
}

// ignore turns the expected refusal into success and anything else into a failure
func ignore(err, expected error) error {
	if errors.Is(err, expected) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("expected %v, got success", expected)
	}
	return err
}
