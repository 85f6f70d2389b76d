// Package config provides configuration management for remocode projects.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectDir is the directory name for remocode metadata
	ProjectDir = ".remocode"
	// ConfigFile is the filename for the remocode configuration
	ConfigFile = "config.yaml"
)

// ErrNotInitialized is returned when no configuration file exists
var ErrNotInitialized = errors.New("remocode not initialized. Run 'remocode init' first")

// Manager handles remocode configuration
type Manager struct {
	projectRoot string
	configPath  string
}

// NewManager creates a new configuration manager
func NewManager(projectRoot string) *Manager {
	return &Manager{
		projectRoot: projectRoot,
		configPath:  filepath.Join(projectRoot, ProjectDir, ConfigFile),
	}
}

// Load reads the configuration from disk and applies the environment overlay
func (m *Manager) Load() (*Config, error) {
	cfg, err := LoadWithValidation(m.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}

	if err := LoadDotEnv(m.projectRoot); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the configuration to disk
func (m *Manager) Save(config *Config) error {
	if err := ValidateConfig(config); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Init writes a default configuration unless one already exists
func (m *Manager) Init(recordsPath string, force bool) (*Config, error) {
	if m.IsInitialized() && !force {
		return nil, fmt.Errorf("already initialized: %s", m.configPath)
	}

	cfg := DefaultConfig()
	if recordsPath != "" {
		cfg.Records.Path = recordsPath
	}

	if err := m.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsInitialized checks if remocode has been initialized in the project
func (m *Manager) IsInitialized() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// GetProjectRoot returns the project root directory
func (m *Manager) GetProjectRoot() string {
	return m.projectRoot
}

// GetConfigPath returns the configuration file path
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// ResolveRecordsPath returns the snapshot path. A relative path from the
// config file is anchored at the project root; ApplyEnv has already made a
// REMOCODE_RECORDS value absolute against the working directory.
func (m *Manager) ResolveRecordsPath(cfg *Config) string {
	if cfg.Records.Path == "" || filepath.IsAbs(cfg.Records.Path) {
		return cfg.Records.Path
	}
	return filepath.Join(m.projectRoot, cfg.Records.Path)
}

// FindProjectRoot searches for the project root by looking for .remocode
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(cwd)
}

// FindProjectRootFrom walks up from dir looking for .remocode/config.yaml
func FindProjectRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectDir, ConfigFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("not in a remocode project (no %s directory found)", ProjectDir)
}

// applyDefaults fills values left empty in the file
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Records.LockTimeout == "" {
		cfg.Records.LockTimeout = DefaultLockTimeout.String()
	}
	if cfg.Formats.Removal.Start == "" {
		cfg.Formats.Removal.Start = DefaultStart
	}
	if cfg.Formats.Contract.Start == "" {
		cfg.Formats.Contract.Start = DefaultStart
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "pretty"
	}
}
