package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/takumin/tempo/internal/domain"
)

// EditNotesInput contains the parameters for editing record notes.
type EditNotesInput struct {
	Notes string
	ID    int64
}

// EditNotesOutput contains the result of editing notes.
type EditNotesOutput struct {
	AutoSync bool // True when the caller should trigger a sync
}

// EditNotes updates the notes of an existing record. An unknown ID is
// a silent no-op.
type EditNotes struct {
	records      domain.RecordRepository
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewEditNotes creates a new EditNotes use case.
func NewEditNotes(records domain.RecordRepository, configLoader domain.ConfigLoader, logger domain.Logger) *EditNotes {
	return &EditNotes{records: records, configLoader: configLoader, logger: logger}
}

// Execute updates the notes.
func (uc *EditNotes) Execute(_ context.Context, in EditNotesInput) (*EditNotesOutput, error) {
	notes := strings.TrimSpace(in.Notes)
	if err := uc.records.SetNotes(in.ID, notes); err != nil {
		return nil, fmt.Errorf("update notes: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("records", fmt.Sprintf("updated notes on record %d", in.ID))
	}
	return &EditNotesOutput{AutoSync: shouldAutoSync(uc.configLoader)}, nil
}
