package config

import (
	"fmt"
	"os"
	"strconv"

	"sheetpick/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Export ExportConfig
	// Seed drives deterministic sampling; 0 means time-seeded streams
	Seed int64
}

// DataConfig holds spreadsheet input settings
type DataConfig struct {
	// FilePath is offered as the default at the file prompt
	FilePath string
	// Sheet selects a worksheet; empty means the first sheet
	Sheet string
}

// ExportConfig holds export artifact settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	seed, err := getEnvInt64("SHEETPICK_SEED", 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return &Config{
		Data: DataConfig{
			FilePath: getEnvOrDefault("SHEETPICK_FILE", ""),
			Sheet:    getEnvOrDefault("SHEETPICK_SHEET", ""),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("SHEETPICK_EXPORT_DIR", "exports"),
		},
		Seed: seed,
	}, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be an integer, got %q", key, value))
	}
	return parsed, nil
}
