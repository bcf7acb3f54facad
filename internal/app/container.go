// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/infra/config"
	"github.com/takumin/tempo/internal/infra/github"
	"github.com/takumin/tempo/internal/infra/jsonstore"
	"github.com/takumin/tempo/internal/infra/logging"
	"github.com/takumin/tempo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ConfigDir string // Directory holding config.toml
	DataDir   string // Directory holding records and logs
	StorePath string // Path to records.json
}

// NewConfig resolves the default paths from the XDG base directories.
func NewConfig() Config {
	dataDir := defaultDataDir()
	return Config{
		ConfigDir: config.DefaultConfigDir(),
		DataDir:   dataDir,
		StorePath: filepath.Join(dataDir, "records.json"),
	}
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tempo")
}

// Container provides dependency injection for the application.
// It holds all port implementations, the single process-wide timer,
// and factory methods for use cases.
type Container struct {
	Records       domain.RecordRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Syncer        domain.Syncer
	Clock         domain.Clock
	Logger        domain.Logger
	Timer         *domain.Timer

	Config Config
}

// New creates a new Container with the default wiring.
func New() (*Container, error) {
	cfg := NewConfig()

	clock := domain.RealClock{}
	configLoader := config.NewLoader(cfg.ConfigDir)

	// Log level comes from the config file; a broken file falls back
	// to defaults so startup never fails on configuration.
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}
	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Records:       jsonstore.New(cfg.StorePath),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.ConfigDir),
		Syncer:        github.NewClient(clock),
		Clock:         clock,
		Logger:        logger,
		Timer:         domain.NewTimer(clock),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, records domain.RecordRepository, configLoader domain.ConfigLoader, configManager domain.ConfigManager, syncer domain.Syncer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Records:       records,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Syncer:        syncer,
		Clock:         clock,
		Logger:        logger,
		Timer:         domain.NewTimer(clock),
		Config:        cfg,
	}
}

// UseCase factory methods

// StartTimerUseCase returns a new StartTimer use case.
func (c *Container) StartTimerUseCase() *usecase.StartTimer {
	return usecase.NewStartTimer(c.Timer, c.Logger)
}

// PauseTimerUseCase returns a new PauseTimer use case.
func (c *Container) PauseTimerUseCase() *usecase.PauseTimer {
	return usecase.NewPauseTimer(c.Timer, c.Logger)
}

// StopTimerUseCase returns a new StopTimer use case.
func (c *Container) StopTimerUseCase() *usecase.StopTimer {
	return usecase.NewStopTimer(c.Timer, c.Records, c.ConfigLoader, c.Logger)
}

// ListRecordsUseCase returns a new ListRecords use case.
func (c *Container) ListRecordsUseCase() *usecase.ListRecords {
	return usecase.NewListRecords(c.Records)
}

// DeleteRecordUseCase returns a new DeleteRecord use case.
func (c *Container) DeleteRecordUseCase() *usecase.DeleteRecord {
	return usecase.NewDeleteRecord(c.Records, c.ConfigLoader, c.Logger)
}

// EditNotesUseCase returns a new EditNotes use case.
func (c *Container) EditNotesUseCase() *usecase.EditNotes {
	return usecase.NewEditNotes(c.Records, c.ConfigLoader, c.Logger)
}

// GetStatsUseCase returns a new GetStats use case.
func (c *Container) GetStatsUseCase() *usecase.GetStats {
	return usecase.NewGetStats(c.Records, c.Clock)
}

// SyncRecordsUseCase returns a new SyncRecords use case.
func (c *Container) SyncRecordsUseCase() *usecase.SyncRecords {
	return usecase.NewSyncRecords(c.Records, c.ConfigLoader, c.Syncer, c.Clock, c.Logger)
}

// ExportRecordsUseCase returns a new ExportRecords use case.
func (c *Container) ExportRecordsUseCase() *usecase.ExportRecords {
	return usecase.NewExportRecords(c.Records, c.Clock)
}

// ImportRecordsUseCase returns a new ImportRecords use case.
func (c *Container) ImportRecordsUseCase() *usecase.ImportRecords {
	return usecase.NewImportRecords(c.Records, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// SetConfigUseCase returns a new SetConfig use case.
func (c *Container) SetConfigUseCase() *usecase.SetConfig {
	return usecase.NewSetConfig(c.ConfigLoader, c.ConfigManager, c.Logger)
}
