package editlock

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Status reports whether userID may edit entityID. An expired lease found on
// the way is cleared first.
func (m *Manager) Status(ctx context.Context, entityID, userID uint64) (*usecase.LockStatus, error) {
	if err := validateIDs(entityID, userID); err != nil {
		return nil, err
	}

	lock, err := m.uow.GetLockableRepository(ctx, m.kind).FindLock(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if lock.IsExpired(m.timeProvider.Now()) {
		lock, err = m.reclaimExpired(ctx, entityID)
		if err != nil {
			return nil, err
		}
	}

	now := m.timeProvider.Now()
	status := &usecase.LockStatus{
		Kind:     m.kind,
		EntityID: entityID,
		CanEdit:  !lock.BlocksUser(userID, now),
	}
	if lock.IsActive(now) {
		holder := lock.Holder()
		expiresAt := lock.ExpiresAt()
		status.EditingUser = &holder
		status.ExpiresAt = &expiresAt
		status.IsYou = holder == userID
	}
	return status, nil
}

// reclaimExpired clears the lease if it is still expired once the row is locked.
// A lease granted between the first read and the row lock is kept.
func (m *Manager) reclaimExpired(ctx context.Context, entityID uint64) (entity.EditLock, error) {
	var current entity.EditLock
	err := m.uow.Execute(ctx, func(ctx context.Context) error {
		repo := m.uow.GetLockableRepository(ctx, m.kind)

		lock, err := repo.FindLockForUpdate(ctx, entityID)
		if err != nil {
			return err
		}
		if lock.IsExpired(m.timeProvider.Now()) {
			expiredHolder := lock.Holder()
			lock.Clear()
			if err := repo.SaveLock(ctx, entityID, lock); err != nil {
				return err
			}
			m.logger.Debug("Expired edit lock reclaimed", map[string]any{
				"kind":      m.kind.String(),
				"entity_id": entityID,
				"holder":    expiredHolder,
			})
		}
		current = lock
		return nil
	})
	return current, err
}
