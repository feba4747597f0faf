package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Catalog seeding
	Catalog CatalogConfig

	// Pay-it-forward ledger seeding
	PayForward PayForwardConfig

	// Session defaults
	Session SessionConfig

	// Logging
	LogLevel string
}

// CatalogConfig controls how the in-memory cafe catalog is seeded
type CatalogConfig struct {
	// RandSeed seeds slot-availability generation. Zero means time-based.
	RandSeed int64
}

// PayForwardConfig holds the community credit pool seed values
type PayForwardConfig struct {
	SeedPoolCredits int
}

// SessionConfig holds defaults applied when a session request does not
// carry eligibility decisions from the identity service.
type SessionConfig struct {
	DefaultIsMember    bool
	DefaultIsQualified bool
	DefaultSeatCredits int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		Catalog: CatalogConfig{
			RandSeed: getInt64Env("CATALOG_RAND_SEED", 0),
		},

		PayForward: PayForwardConfig{
			SeedPoolCredits: getIntEnv("PAYFORWARD_SEED_CREDITS", 67),
		},

		Session: SessionConfig{
			DefaultIsMember:    getBoolEnv("SESSION_DEFAULT_MEMBER", true),
			DefaultIsQualified: getBoolEnv("SESSION_DEFAULT_QUALIFIED", false),
			DefaultSeatCredits: getIntEnv("SESSION_DEFAULT_SEAT_CREDITS", 0),
		},

		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getInt64Env gets an int64 environment variable with a fallback value
func getInt64Env(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
