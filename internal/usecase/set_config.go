package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/takumin/tempo/internal/domain"
)

// SetConfigInput contains the sync settings to persist.
type SetConfigInput struct {
	Token    string
	Username string
	Repo     string
	AutoSync bool
}

// SetConfigOutput contains the result of saving the configuration.
type SetConfigOutput struct {
	DashboardURL string
	AutoSync     bool
}

// SetConfig validates and persists the sync configuration.
type SetConfig struct {
	configLoader  domain.ConfigLoader
	configManager domain.ConfigManager
	logger        domain.Logger
}

// NewSetConfig creates a new SetConfig use case.
func NewSetConfig(configLoader domain.ConfigLoader, configManager domain.ConfigManager, logger domain.Logger) *SetConfig {
	return &SetConfig{configLoader: configLoader, configManager: configManager, logger: logger}
}

// Execute saves the sync settings. All three credential fields are
// required; other sections of the config file are preserved.
func (uc *SetConfig) Execute(_ context.Context, in SetConfigInput) (*SetConfigOutput, error) {
	sync := domain.SyncConfig{
		Token:    strings.TrimSpace(in.Token),
		Username: strings.TrimSpace(in.Username),
		Repo:     strings.TrimSpace(in.Repo),
		AutoSync: in.AutoSync,
	}
	if err := sync.Validate(); err != nil {
		return nil, err
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Sync = sync

	if err := uc.configManager.Save(cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("config", fmt.Sprintf("sync configured for %s/%s (auto=%t)", sync.Username, sync.Repo, sync.AutoSync))
	}
	return &SetConfigOutput{
		DashboardURL: sync.DashboardURL(),
		AutoSync:     sync.AutoSync,
	}, nil
}
