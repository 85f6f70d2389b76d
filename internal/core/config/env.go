package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file
const (
	EnvRecords     = "REMOCODE_RECORDS"
	EnvOutput      = "REMOCODE_OUTPUT"
	EnvLockTimeout = "REMOCODE_LOCK_TIMEOUT"
)

// LoadDotEnv loads <projectRoot>/.env into the process environment.
// Variables that are already set keep their value.
func LoadDotEnv(projectRoot string) error {
	path := filepath.Join(projectRoot, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides configuration values from REMOCODE_* variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvRecords); v != "" {
		// Relative to the working directory, like --records, not the project root
		abs, err := filepath.Abs(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRecords, err)
		}
		cfg.Records.Path = abs
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvLockTimeout); v != "" {
		cfg.Records.LockTimeout = v
	}
	return ValidateConfig(cfg)
}
