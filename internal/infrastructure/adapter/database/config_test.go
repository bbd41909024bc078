package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostgres() *Config {
	return &Config{
		Driver:        DriverPostgres,
		Host:          "localhost",
		Port:          5432,
		Username:      "catalog",
		Password:      "secret",
		Database:      "catalog",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "warn",
		RetryAttempts: 3,
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"sqlite without path", func(c *Config) { c.Driver = DriverSQLite }, "path is required"},
		{"sqlite with path", func(c *Config) { c.Driver = DriverSQLite; c.Path = "catalog.db" }, ""},
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }, "unsupported database driver"},
		{"no connections", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"no timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgres()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_SafeDSN(t *testing.T) {
	c := validPostgres()

	assert.Contains(t, c.DSN(), "password=secret")
	assert.NotContains(t, c.SafeDSN(), "secret")
	assert.Contains(t, c.SafeDSN(), "password=***")

	c.Driver = DriverSQLite
	c.Path = "file:catalog.db"
	assert.Equal(t, "file:catalog.db", c.DSN())
	assert.Equal(t, c.DSN(), c.SafeDSN())
}

func TestConfig_CopyOnWrite(t *testing.T) {
	c := validPostgres()

	wider := c.WithMaxOpenConnections(50)
	slower := c.WithQueryTimeout(time.Minute)

	assert.Equal(t, 10, c.MaxOpenConns)
	assert.Equal(t, 50, wider.MaxOpenConns)
	assert.Equal(t, 5*time.Second, c.QueryTimeout)
	assert.Equal(t, time.Minute, slower.QueryTimeout)
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	t.Setenv("CATALOG_DB_HOST", "")
	t.Setenv("CATALOG_DB_PASSWORD", "from-env")

	appConfig := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       DriverPostgres,
			Host:         "db.internal",
			Port:         "6543",
			Username:     "catalog",
			Password:     "from-file",
			Database:     "catalog",
			MaxOpenConns: 12,
			QueryTimeout: 4 * time.Second,
			LogLevel:     "error",
		},
		Catalog: config.CatalogConfig{TxMaxRetries: 6},
	}

	c := CreateConfigFromViperConfig(appConfig)

	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, "from-env", c.Password)
	assert.Equal(t, 12, c.MaxOpenConns)
	assert.Equal(t, 4*time.Second, c.QueryTimeout)
	assert.Equal(t, "error", c.LogLevel)
	assert.Equal(t, 6, c.TxMaxRetries)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Zero(t, ParsePort(""))
	assert.Zero(t, ParsePort("http"))
	assert.Zero(t, ParsePort("99999"))
}
