package config

import (
	"fmt"
)

// ValidateConfig validates the entire configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if config.Version != DefaultVersion {
		return fmt.Errorf("unsupported version: %q", config.Version)
	}

	if err := ValidateStart("removal", config.Formats.Removal.Start); err != nil {
		return err
	}
	if err := ValidateStart("contract", config.Formats.Contract.Start); err != nil {
		return err
	}

	if _, err := config.GetLockTimeout(); err != nil {
		return err
	}

	switch config.Output.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", config.Output.Format)
	}

	return nil
}

// ValidateStart validates a start letter; empty means the default
func ValidateStart(format, start string) error {
	if start == "" {
		return nil
	}
	if len(start) != 1 || start[0] < 'A' || start[0] > 'Z' {
		return fmt.Errorf("invalid %s start %q: must be a single letter A-Z", format, start)
	}
	return nil
}
