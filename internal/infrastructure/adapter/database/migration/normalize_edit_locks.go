package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// lockableTables carry the editing_user_id and edit_lock_time pair
var lockableTables = []string{"products", "categories"}

// NormalizeEditLocks clears lease columns that are only half set. Rows written
// before 1.1.0 could hold a user without an expiry.
type NormalizeEditLocks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeEditLocks creates a new migration instance
func NewNormalizeEditLocks(db *gorm.DB, logger coreport.Logger) *NormalizeEditLocks {
	return &NormalizeEditLocks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *NormalizeEditLocks) Run(ctx context.Context) error {
	m.logger.Info("Normalizing edit-lock columns", nil)

	for _, table := range lockableTables {
		result := m.db.WithContext(ctx).Exec(
			"UPDATE " + table + " SET editing_user_id = NULL, edit_lock_time = NULL " +
				"WHERE (editing_user_id IS NULL AND edit_lock_time IS NOT NULL) " +
				"OR (editing_user_id IS NOT NULL AND edit_lock_time IS NULL)")
		if result.Error != nil {
			m.logger.Error("Failed to clear half-set edit locks", map[string]any{
				"table": table,
				"error": result.Error.Error(),
			})
			return result.Error
		}

		if result.RowsAffected > 0 {
			m.logger.Warn("Cleared inconsistent edit locks", map[string]any{
				"table": table,
				"rows":  result.RowsAffected,
			})
		}
	}

	return nil
}
