package editlock

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Acquire grants the lease on entityID to userID, or renews it when userID
// already holds it. Another user's active lease yields an EditLockConflictError.
func (m *Manager) Acquire(ctx context.Context, entityID, userID uint64) (*usecase.AcquireResult, error) {
	if err := validateIDs(entityID, userID); err != nil {
		return nil, err
	}

	var result *usecase.AcquireResult
	err := m.uow.Execute(ctx, func(ctx context.Context) error {
		repo := m.uow.GetLockableRepository(ctx, m.kind)

		lock, err := repo.FindLockForUpdate(ctx, entityID)
		if err != nil {
			return err
		}

		now := m.timeProvider.Now()
		if lock.BlocksUser(userID, now) {
			return errs.NewEditLockConflictError(m.kind.String(), entityID, lock.Holder(), lock.ExpiresAt())
		}

		renewed := lock.HeldBy(userID, now)
		expiresAt := lock.Grant(userID, now)
		if err := repo.SaveLock(ctx, entityID, lock); err != nil {
			return err
		}

		result = &usecase.AcquireResult{
			Kind:        m.kind,
			EntityID:    entityID,
			EditingUser: userID,
			ExpiresAt:   expiresAt,
			Duration:    entity.EditLockDuration,
			Renewed:     renewed,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrEditLocked) {
			fields := errs.LogFields(err)
			fields["requested_by"] = userID
			m.logger.Info("Edit lock refused", fields)
		}
		return nil, err
	}

	m.logger.Info("Edit lock granted", map[string]any{
		"kind":       m.kind.String(),
		"entity_id":  entityID,
		"user_id":    userID,
		"expires_at": result.ExpiresAt,
		"renewed":    result.Renewed,
	})
	return result, nil
}
