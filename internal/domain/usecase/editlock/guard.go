package editlock

import (
	"context"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
)

// GuardedUpdate runs mutate while holding the row lock and clears the lease in
// the same transaction. Another user's active lease aborts before mutate runs.
func (m *Manager) GuardedUpdate(ctx context.Context, entityID, userID uint64, mutate func(ctx context.Context) error) error {
	if err := validateIDs(entityID, userID); err != nil {
		return err
	}

	err := m.uow.Execute(ctx, func(ctx context.Context) error {
		repo, lock, err := m.lockForEdit(ctx, entityID, userID)
		if err != nil {
			return err
		}

		if err := mutate(ctx); err != nil {
			return err
		}

		if !lock.IsSet() {
			return nil
		}
		lock.Clear()
		return repo.SaveLock(ctx, entityID, lock)
	})
	if err != nil {
		m.logRefused("update", entityID, userID, err)
		return err
	}

	m.logger.Info("Guarded update applied", map[string]any{
		"kind":      m.kind.String(),
		"entity_id": entityID,
		"user_id":   userID,
	})
	return nil
}

// GuardedDelete deletes entityID while holding the row lock
func (m *Manager) GuardedDelete(ctx context.Context, entityID, userID uint64) error {
	if err := validateIDs(entityID, userID); err != nil {
		return err
	}

	err := m.uow.Execute(ctx, func(ctx context.Context) error {
		repo, _, err := m.lockForEdit(ctx, entityID, userID)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, entityID)
	})
	if err != nil {
		m.logRefused("delete", entityID, userID, err)
		return err
	}

	m.logger.Info("Guarded delete applied", map[string]any{
		"kind":      m.kind.String(),
		"entity_id": entityID,
		"user_id":   userID,
	})
	return nil
}

// lockForEdit row-locks entityID and fails when another user holds an active lease
func (m *Manager) lockForEdit(ctx context.Context, entityID, userID uint64) (persistence.LockableRepository, entity.EditLock, error) {
	repo := m.uow.GetLockableRepository(ctx, m.kind)

	lock, err := repo.FindLockForUpdate(ctx, entityID)
	if err != nil {
		return nil, entity.EditLock{}, err
	}
	if lock.BlocksUser(userID, m.timeProvider.Now()) {
		return nil, entity.EditLock{}, errs.NewEditLockConflictError(m.kind.String(), entityID, lock.Holder(), lock.ExpiresAt())
	}
	return repo, lock, nil
}

func (m *Manager) logRefused(op string, entityID, userID uint64, err error) {
	if !errs.IsEditLockedError(err) {
		return
	}
	fields := errs.LogFields(err)
	fields["operation"] = op
	fields["requested_by"] = userID
	fields["entity_id"] = entityID
	m.logger.Warn("Guarded operation refused", fields)
}
