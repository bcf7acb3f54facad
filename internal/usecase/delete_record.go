package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// DeleteRecordInput contains the parameters for deleting a record.
type DeleteRecordInput struct {
	ID int64
}

// DeleteRecordOutput contains the result of deleting a record.
type DeleteRecordOutput struct {
	AutoSync bool // True when the caller should trigger a sync
}

// DeleteRecord removes a record from the store. Deleting an unknown ID
// is a silent no-op.
type DeleteRecord struct {
	records      domain.RecordRepository
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewDeleteRecord creates a new DeleteRecord use case.
func NewDeleteRecord(records domain.RecordRepository, configLoader domain.ConfigLoader, logger domain.Logger) *DeleteRecord {
	return &DeleteRecord{records: records, configLoader: configLoader, logger: logger}
}

// Execute deletes the record.
func (uc *DeleteRecord) Execute(_ context.Context, in DeleteRecordInput) (*DeleteRecordOutput, error) {
	if err := uc.records.Remove(in.ID); err != nil {
		return nil, fmt.Errorf("delete record: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("records", fmt.Sprintf("deleted record %d", in.ID))
	}
	return &DeleteRecordOutput{AutoSync: shouldAutoSync(uc.configLoader)}, nil
}

// shouldAutoSync reports whether mutations should trigger a background
// sync: auto-sync enabled and a credential present.
func shouldAutoSync(loader domain.ConfigLoader) bool {
	cfg, err := loader.Load()
	if err != nil {
		return false
	}
	return cfg.Sync.AutoSync && cfg.Sync.Token != ""
}
