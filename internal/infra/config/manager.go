package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/takumin/tempo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager persists configuration changes.
type Manager struct {
	confDir string
}

// NewManager creates a new Manager for the given config directory.
func NewManager(confDir string) *Manager {
	return &Manager{confDir: confDir}
}

// Path returns the location of the configuration file.
func (m *Manager) Path() string {
	return filepath.Join(m.confDir, domain.ConfigFileName)
}

// Save writes the configuration file, creating the directory if needed.
func (m *Manager) Save(cfg *domain.Config) error {
	if err := os.MkdirAll(m.confDir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// 0600: the file carries the access token.
	if err := os.WriteFile(m.Path(), content, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
