package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. Loaded once at startup and
// injected everywhere; nothing reads the environment after Load returns.
type Config struct {
	Port                  string
	Env                   string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSSLMode             string
	TokenSecret           string
	OMDBAPIKey            string
	TokenExpiry           time.Duration
	TokenRefreshThreshold time.Duration
}

// requiredEnvVars must be present in the environment (empty values are
// allowed except where noted); startup fails fast otherwise.
var requiredEnvVars = []string{
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"APP_ENV",
	"PORT",
	"TOKEN_SECRET",
	"OMDB_API_KEY",
}

// Load reads configuration from the environment (and .env if present).
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var missing []string
	for _, name := range requiredEnvVars {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Port:                  os.Getenv("PORT"),
		Env:                   os.Getenv("APP_ENV"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSSLMode:             getEnv("DB_SSLMODE", "disable"),
		TokenSecret:           os.Getenv("TOKEN_SECRET"),
		OMDBAPIKey:            os.Getenv("OMDB_API_KEY"),
		TokenExpiry:           15 * 24 * time.Hour,
		TokenRefreshThreshold: 7 * 24 * time.Hour,
	}

	if exp := os.Getenv("TOKEN_EXPIRY"); exp != "" {
		parsed, err := time.ParseDuration(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_EXPIRY: %w", err)
		}
		cfg.TokenExpiry = parsed
	}
	if threshold := os.Getenv("TOKEN_REFRESH_THRESHOLD"); threshold != "" {
		parsed, err := time.ParseDuration(threshold)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_REFRESH_THRESHOLD: %w", err)
		}
		cfg.TokenRefreshThreshold = parsed
	}

	if cfg.IsProduction() && cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD cannot be empty in production")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
