package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// ListRecordsInput contains the parameters for listing records.
type ListRecordsInput struct {
	Date *time.Time // Restrict to this local calendar day (nil = all)
}

// ListRecordsOutput contains the listed records.
type ListRecordsOutput struct {
	Records  []domain.Record
	Projects []string // Distinct project labels across the whole store
}

// ListRecords returns stored records, most-recent-first.
type ListRecords struct {
	records domain.RecordRepository
}

// NewListRecords creates a new ListRecords use case.
func NewListRecords(records domain.RecordRepository) *ListRecords {
	return &ListRecords{records: records}
}

// Execute lists records, optionally filtered by day.
func (uc *ListRecords) Execute(_ context.Context, in ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.records.List(in.Date)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	projects, err := uc.records.Projects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return &ListRecordsOutput{Records: records, Projects: projects}, nil
}
