package editlock

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/catalog-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
)

// Manager hands out time-boxed edit leases on the rows of one entity kind.
// Every state change happens under a row lock inside one transaction; an
// expired lease is treated as absent and cleared lazily.
type Manager struct {
	kind         entity.EntityKind
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.EditLockUseCase = (*Manager)(nil)

// NewManager creates a lease manager for kind. It panics on an unknown kind.
func NewManager(
	kind entity.EntityKind,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Manager {
	if !kind.Valid() {
		panic(fmt.Sprintf("editlock: unsupported entity kind %q", kind))
	}
	return &Manager{
		kind:         kind,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Kind returns the entity kind this manager serves
func (m *Manager) Kind() entity.EntityKind {
	return m.kind
}

// ReleaseAllForUser clears every lease of this kind held by userID in one bulk update.
// It does not take row locks, so it may race with a concurrent Acquire by the same user.
func (m *Manager) ReleaseAllForUser(ctx context.Context, userID uint64) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrUnauthenticated
	}

	count, err := m.uow.GetLockableRepository(ctx, m.kind).ClearLocksHeldBy(ctx, userID)
	if err != nil {
		return 0, err
	}

	m.logger.Info("Released all edit locks of user", map[string]any{
		"kind":    m.kind.String(),
		"user_id": userID,
		"count":   count,
	})
	return count, nil
}

func validateIDs(entityID, userID uint64) error {
	if userID == 0 {
		return errs.ErrUnauthenticated
	}
	if entityID == 0 {
		return errs.ErrInvalidEntityID
	}
	return nil
}
