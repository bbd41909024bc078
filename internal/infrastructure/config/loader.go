package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. CATALOG_DB_HOST
const EnvPrefix = "CATALOG"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// errNoDotEnv is returned when none of DotEnvPaths exists
var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies
// defaults and CATALOG_* environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "catalog.db")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("catalog.seedDemoData", false)
	v.SetDefault("catalog.defaultPageSize", 20)
	v.SetDefault("catalog.maxPageSize", 100)
	v.SetDefault("catalog.voucherCodeRetries", 3)
	v.SetDefault("catalog.txMaxRetries", 3)
}

// getEnvironment determines the environment from CATALOG_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_DRIVER":    "database.driver",
		"DB_HOST":      "database.host",
		"DB_PORT":      "database.port",
		"DB_USERNAME":  "database.username",
		"DB_PASSWORD":  "database.password",
		"DB_NAME":      "database.database",
		"DB_SSL_MODE":  "database.sslMode",
		"DB_PATH":      "database.path",
		"DB_LOG_LEVEL": "database.logLevel",
		"SERVER_HOST":  "server.host",
		"SERVER_PORT":  "server.port",
		"LOGGER_LEVEL": "logger.level",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"VOUCHER_CODE_RETRIES":          "catalog.voucherCodeRetries",
		"TX_MAX_RETRIES":                "catalog.txMaxRetries",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(EnvPrefix + "_" + env); ok && value >= 0 {
			v.Set(key, value)
		}
	}

	if seed := os.Getenv(EnvPrefix + "_SEED_DEMO_DATA"); seed != "" {
		if b, err := strconv.ParseBool(seed); err == nil {
			v.Set("catalog.seedDemoData", b)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}

// Validate checks the settings main needs before wiring anything
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return errors.New("database host is required")
		}
		if c.Database.Database == "" {
			return errors.New("database name is required")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("maxPageSize %d is below defaultPageSize %d",
			c.Catalog.MaxPageSize, c.Catalog.DefaultPageSize)
	}
	return nil
}
