package editlock

import (
	"context"

	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
)

// Release clears the lease on entityID unless another user holds it.
// Releasing an unlocked or expired entity succeeds without a write.
func (m *Manager) Release(ctx context.Context, entityID, userID uint64) error {
	if err := validateIDs(entityID, userID); err != nil {
		return err
	}

	err := m.uow.Execute(ctx, func(ctx context.Context) error {
		repo := m.uow.GetLockableRepository(ctx, m.kind)

		lock, err := repo.FindLockForUpdate(ctx, entityID)
		if err != nil {
			return err
		}

		if lock.BlocksUser(userID, m.timeProvider.Now()) {
			return errs.NewLockOwnershipError(m.kind.String(), entityID, userID, lock.Holder())
		}
		if !lock.IsSet() {
			return nil
		}

		lock.Clear()
		return repo.SaveLock(ctx, entityID, lock)
	})
	if err != nil {
		return err
	}

	m.logger.Info("Edit lock released", map[string]any{
		"kind":      m.kind.String(),
		"entity_id": entityID,
		"user_id":   userID,
	})
	return nil
}
