// Package config loads runtime configuration from the environment. All
// env access is centralized here; no other package reads env vars. A
// local .env file is honored when present.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the subsystem's runtime configuration.
type Config struct {
	// DataDir is the directory the settings documents live in.
	DataDir string

	// Log configures the logging system.
	Log LogConfig
}

// LogConfig describes logging behavior.
type LogConfig struct {
	// Level is one of logrus's levels: "debug", "info", "warn", "error".
	Level string

	// Format is "text" or "json".
	Format string

	// EnableFile mirrors log output into FilePath.
	EnableFile bool

	// FilePath is the log file location when EnableFile is set.
	FilePath string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults for anything unset.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir: getEnv("SETTINGS_DATA_DIR", defaultDataDir()),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			EnableFile: getEnvBool("LOG_ENABLE_FILE", false),
			FilePath:   getEnv("LOG_FILE_PATH", "./data/logs/settings.log"),
		},
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/settings"
	}
	return filepath.Join(home, ".shopsettings")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
