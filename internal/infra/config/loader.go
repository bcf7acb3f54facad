// Package config provides configuration loading and persistence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/takumin/tempo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Path to the config directory (e.g., ~/.config/tempo)
}

// NewLoader creates a new Loader for the given config directory.
func NewLoader(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// DefaultConfigDir returns the config directory, honoring XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tempo")
}

// Load returns the configuration. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	path := filepath.Join(l.confDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := domain.NewDefaultConfig()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
