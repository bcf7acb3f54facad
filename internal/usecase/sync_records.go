package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// SyncRecordsOutput contains the result of a sync.
type SyncRecordsOutput struct {
	DashboardURL string // Shareable dashboard link for the sync target
	RecordCount  int    // Number of records uploaded
}

// SyncRecords uploads a snapshot of the full record store to the remote
// file store. One attempt; failures surface to the caller and are never
// retried here.
type SyncRecords struct {
	records      domain.RecordRepository
	configLoader domain.ConfigLoader
	syncer       domain.Syncer
	clock        domain.Clock
	logger       domain.Logger
}

// NewSyncRecords creates a new SyncRecords use case.
func NewSyncRecords(records domain.RecordRepository, configLoader domain.ConfigLoader, syncer domain.Syncer, clock domain.Clock, logger domain.Logger) *SyncRecords {
	return &SyncRecords{
		records:      records,
		configLoader: configLoader,
		syncer:       syncer,
		clock:        clock,
		logger:       logger,
	}
}

// Execute builds the snapshot and hands it to the sync client.
func (uc *SyncRecords) Execute(ctx context.Context) (*SyncRecordsOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !cfg.Sync.IsConfigured() {
		return nil, domain.ErrSyncNotConfigured
	}

	records, err := uc.records.All()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	snapshot := domain.NewSnapshot(records, uc.clock.Now())
	if err := uc.syncer.Sync(ctx, snapshot, cfg.Sync); err != nil {
		if uc.logger != nil {
			uc.logger.Error("sync", fmt.Sprintf("sync failed: %v", err))
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("sync", fmt.Sprintf("synced %d records", len(records)))
	}
	return &SyncRecordsOutput{
		DashboardURL: cfg.Sync.DashboardURL(),
		RecordCount:  len(records),
	}, nil
}
