package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// ShowConfigOutput contains the current configuration.
type ShowConfigOutput struct {
	Config       *domain.Config
	Path         string // Location of the config file
	DashboardURL string // Empty until username and repo are set
}

// ShowConfig returns the current configuration.
type ShowConfig struct {
	configLoader  domain.ConfigLoader
	configManager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configLoader domain.ConfigLoader, configManager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{configLoader: configLoader, configManager: configManager}
}

// Execute loads the configuration.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowConfigOutput{
		Config:       cfg,
		Path:         uc.configManager.Path(),
		DashboardURL: cfg.Sync.DashboardURL(),
	}, nil
}
