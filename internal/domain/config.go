package domain

import "fmt"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Config represents the persisted application configuration.
type Config struct {
	Sync SyncConfig `toml:"sync"` // [sync] settings
	Log  LogConfig  `toml:"log"`  // [log] settings
}

// SyncConfig holds the GitHub sync settings from the [sync] section.
type SyncConfig struct {
	Token    string `toml:"token"`     // Personal access token
	Username string `toml:"username"`  // Account the data repo belongs to
	Repo     string `toml:"repo"`      // Repository holding the synced file
	AutoSync bool   `toml:"auto_sync"` // Sync after mutations and every 5 minutes
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// IsConfigured reports whether all credential fields are present.
func (c SyncConfig) IsConfigured() bool {
	return c.Token != "" && c.Username != "" && c.Repo != ""
}

// Validate checks that the credential fields are complete.
func (c SyncConfig) Validate() error {
	if !c.IsConfigured() {
		return ErrConfigIncomplete
	}
	return nil
}

// DashboardURL returns the shareable dashboard link for the configured
// GitHub Pages site. It is derived, never re-validated against the
// sync target.
func (c SyncConfig) DashboardURL() string {
	if c.Username == "" || c.Repo == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.github.io/%s/dashboard.html", c.Username, c.Repo)
}
