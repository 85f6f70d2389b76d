package config

import (
	"fmt"
	"time"
)

// Config represents the remocode project configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Records RecordsConfig `yaml:"records" json:"records"`
	Formats FormatsConfig `yaml:"formats" json:"formats"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// RecordsConfig locates the record snapshot exported by the dashboard
type RecordsConfig struct {
	// Path is relative to the project root unless absolute
	Path        string `yaml:"path" json:"path"`
	LockTimeout string `yaml:"lockTimeout,omitempty" json:"lockTimeout,omitempty"`
}

// FormatsConfig holds per-format overrides
type FormatsConfig struct {
	Removal  LetterFormatConfig `yaml:"removal,omitempty" json:"removal,omitempty"`
	Contract LetterFormatConfig `yaml:"contract,omitempty" json:"contract,omitempty"`
}

// LetterFormatConfig configures a letter-prefixed code format
type LetterFormatConfig struct {
	Start string `yaml:"start,omitempty" json:"start,omitempty"`
}

// OutputConfig represents CLI output preferences
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

const (
	// DefaultVersion is the only supported configuration version
	DefaultVersion = "1.0"
	// DefaultRecordsPath is where init points the snapshot
	DefaultRecordsPath = "records.yaml"
	// DefaultLockTimeout bounds the wait for a shared lock on the snapshot
	DefaultLockTimeout = 5 * time.Second
	// DefaultStart is the first prefix letter of letter formats
	DefaultStart = "A"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: DefaultVersion,
		Records: RecordsConfig{
			Path:        DefaultRecordsPath,
			LockTimeout: DefaultLockTimeout.String(),
		},
		Formats: FormatsConfig{
			Removal:  LetterFormatConfig{Start: DefaultStart},
			Contract: LetterFormatConfig{Start: DefaultStart},
		},
		Output: OutputConfig{Format: "pretty"},
	}
}

// GetLockTimeout parses the configured lock timeout
func (c *Config) GetLockTimeout() (time.Duration, error) {
	if c.Records.LockTimeout == "" {
		return DefaultLockTimeout, nil
	}
	d, err := time.ParseDuration(c.Records.LockTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid lock timeout %q: %w", c.Records.LockTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid lock timeout %q: must be positive", c.Records.LockTimeout)
	}
	return d, nil
}
