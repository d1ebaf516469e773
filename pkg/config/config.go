package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Run modes recognized by the orchestrator.
const (
	ModeAddBets = "ADD_BETS"
	ModeReset   = "RESET"
)

// Storage modes for the quote journal.
const (
	StorageConsole  = "console"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel       string
	MetricsEnabled bool
	HTTPPort       string

	// Manifold API
	ManifoldAPIURL  string
	ManifoldAPIKey  string
	ManifoldUser    string
	HTTPTimeout     time.Duration
	PageSize        int

	// Run behavior
	RunMode      string
	BatchSize    int
	DryRun       bool
	ResetRequote bool

	// Quoting
	QuoteMinTrades  int
	QuoteStakeBase  float64
	QuoteStakeSlope float64

	// Quote journal storage
	StorageMode  string // "postgres" or "console"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		MetricsEnabled: getBoolOrDefault("METRICS_ENABLED", false),
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),

		// Manifold API defaults
		ManifoldAPIURL: getEnvOrDefault("MANIFOLD_API_URL", "https://manifold.markets/api/v0"),
		ManifoldAPIKey: os.Getenv("MANIFOLD_API_KEY"),
		ManifoldUser:   os.Getenv("MANIFOLD_USERNAME"),
		HTTPTimeout:    getDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		PageSize:       getIntOrDefault("PAGE_SIZE", 1000),

		// Run defaults
		RunMode:      getEnvOrDefault("RUN_MODE", ModeAddBets),
		BatchSize:    getIntOrDefault("BATCH_SIZE", 10),
		DryRun:       getBoolOrDefault("DRY_RUN", false),
		ResetRequote: getBoolOrDefault("RESET_REQUOTE", false),

		// Quoting defaults
		QuoteMinTrades:  getIntOrDefault("QUOTE_MIN_TRADES", 10),
		QuoteStakeBase:  getFloat64OrDefault("QUOTE_STAKE_BASE", 10.0),
		QuoteStakeSlope: getFloat64OrDefault("QUOTE_STAKE_SLOPE", 15.0),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", StorageConsole),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "quoter"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "quoter123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "manifold_quoter"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid. A validation failure
// aborts the run before any network call is made.
func (c *Config) Validate() error {
	if c.ManifoldAPIURL == "" {
		return fmt.Errorf("MANIFOLD_API_URL cannot be empty")
	}

	if c.ManifoldUser == "" {
		return fmt.Errorf("MANIFOLD_USERNAME is required")
	}

	if c.RunMode != ModeAddBets && c.RunMode != ModeReset {
		return fmt.Errorf("RUN_MODE must be %q or %q, got %q", ModeAddBets, ModeReset, c.RunMode)
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("BATCH_SIZE must be positive, got %d", c.BatchSize)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}

	if c.QuoteMinTrades < 2 {
		return fmt.Errorf("QUOTE_MIN_TRADES must be at least 2, got %d", c.QuoteMinTrades)
	}

	if c.StorageMode != StorageConsole && c.StorageMode != StoragePostgres {
		return fmt.Errorf("STORAGE_MODE must be %q or %q, got %q", StorageConsole, StoragePostgres, c.StorageMode)
	}

	if c.MetricsEnabled && c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty when METRICS_ENABLED is set")
	}

	return nil
}

// RequireAPIKey checks that a credential is present. Commands that submit or
// cancel orders call this before any network call; read-only commands and
// dry runs do not need a key.
func (c *Config) RequireAPIKey() error {
	if c.ManifoldAPIKey == "" {
		return fmt.Errorf("MANIFOLD_API_KEY is required")
	}
	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}
