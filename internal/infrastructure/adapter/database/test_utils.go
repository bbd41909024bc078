package database

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	timeprovider "github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var testDBCounter atomic.Uint64

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a manager for a private in-memory SQLite database.
// The pool holds a single connection, so transactions run one at a time and
// the database lives exactly as long as the manager.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()
	return NewTestDBManagerWithClock(t, logger, timeprovider.NewRealTimeProvider())
}

// NewTestDBManagerWithClock is NewTestDBManager with a caller supplied clock
func NewTestDBManagerWithClock(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, t.Name())
	config := &Config{
		Driver:        DriverSQLite,
		Path:          fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, testDBCounter.Add(1)),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
		TxMaxRetries:  3,
	}

	manager := NewManager(config, logger, timeProvider)
	manager.monitorInterval = 0

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and migrates the schema
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect()
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := m.Manager.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { m.Close(t) })
	return db
}

// UnitOfWork returns a unit of work bound to the test database
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables empties every catalog table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{"comments", "vouchers", "product_categories", "products", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
