package migration

import (
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

type indexStatement struct {
	name string
	sql  string
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) statements() []indexStatement {
	return []indexStatement{
		{
			// Only leased rows are indexed; ReleaseAllForUser scans this
			name: "idx_products_active_locks",
			sql: `CREATE INDEX IF NOT EXISTS idx_products_active_locks
				ON products (editing_user_id, edit_lock_time)
				WHERE editing_user_id IS NOT NULL`,
		},
		{
			name: "idx_categories_active_locks",
			sql: `CREATE INDEX IF NOT EXISTS idx_categories_active_locks
				ON categories (editing_user_id, edit_lock_time)
				WHERE editing_user_id IS NOT NULL`,
		},
		{
			name: "idx_products_voucher_available",
			sql: `CREATE INDEX IF NOT EXISTS idx_products_voucher_available
				ON products (id)
				WHERE voucher_enabled AND voucher_quantity > 0`,
		},
		{
			name: "chk_products_edit_lock_pair",
			sql: `DO $$ BEGIN
				ALTER TABLE products ADD CONSTRAINT chk_products_edit_lock_pair
					CHECK ((editing_user_id IS NULL) = (edit_lock_time IS NULL));
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$`,
		},
		{
			name: "chk_categories_edit_lock_pair",
			sql: `DO $$ BEGIN
				ALTER TABLE categories ADD CONSTRAINT chk_categories_edit_lock_pair
					CHECK ((editing_user_id IS NULL) = (edit_lock_time IS NULL));
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$`,
		},
		{
			name: "idx_vouchers_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_vouchers_created_at_brin
				ON vouchers USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}
}

// CreateAdvancedIndexes creates partial and BRIN indexes plus the lease pair checks
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, stmt := range m.statements() {
		if err := m.db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"name":  stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies table settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Lease and counter updates rewrite product rows often
	if err := m.db.Exec(`ALTER TABLE products SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for products table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.Exec(`ALTER TABLE vouchers ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for vouchers.user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
