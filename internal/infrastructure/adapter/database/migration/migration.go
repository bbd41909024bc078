package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.2.0"

	dialectPostgres = "postgres"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return NewMigrationManagerWithTimeProvider(db, logger, nil)
}

// NewMigrationManagerWithTimeProvider creates a new migration manager with time provider
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion. Running it on an
// up-to-date database does nothing.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.db.Dialector.Name() == dialectPostgres {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(); err != nil {
			m.logger.Error("Failed to create advanced indexes", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		m.advancedIndexMgr.CreatePerformanceTweaks()
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "catalog_schema", "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the last applied version, or "" for a new database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version, name, details string) error {
	appliedAt := time.Now()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		Name:      name,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

// autoMigrateModels creates or extends every catalog table
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.ProductCategory{},
		&model.Voucher{},
		&model.Comment{},
	)
}

// runVersionedMigrations runs the data fixes between the stored and target version
func (m *MigrationManager) runVersionedMigrations(currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		return NewNormalizeEditLocks(m.db, m.logger).Run(context.Background())
	case "1.1.0":
		// 1.2.0 only adds the comments table, which auto-migration creates
		return nil
	default:
		m.logger.Warn("Unknown schema version, relying on auto-migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}
}

// createIndexes creates indexes every supported dialect understands
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_vouchers_user_created ON vouchers (user_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories (parent_id)",
	}
	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
