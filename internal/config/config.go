package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	LogLevel    string
}

// Load reads configuration from the environment with defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
// DatabaseDSN has no default: an empty value is a fatal startup condition
// checked in internal/db.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Production reports whether the app runs with production settings.
func (c Config) Production() bool { return c.Env == "production" }

// NewLogger builds the process logger for the configured environment.
func (c Config) NewLogger() (*zap.Logger, error) {
	var cfg zap.Config
	if c.Production() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(c.LogLevel); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}
