package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/takumin/tempo/internal/domain"
)

// ImportRecordsInput contains the parameters for importing.
type ImportRecordsInput struct {
	Reader io.Reader
}

// ImportRecordsOutput contains the result of importing.
type ImportRecordsOutput struct {
	Imported int
}

// importEntry is one entry of the YAML import file.
type importEntry struct {
	Project  string    `yaml:"project"`
	Start    time.Time `yaml:"start"`
	Duration string    `yaml:"duration"` // Go duration string, e.g. "1h30m"
	Notes    string    `yaml:"notes"`
}

// ImportRecords bulk-creates completed sessions from a YAML document,
// for entering work that was never timed. Entries are validated like
// any other record.
type ImportRecords struct {
	records domain.RecordRepository
	logger  domain.Logger
}

// NewImportRecords creates a new ImportRecords use case.
func NewImportRecords(records domain.RecordRepository, logger domain.Logger) *ImportRecords {
	return &ImportRecords{records: records, logger: logger}
}

// Execute parses and stores the entries. The whole file is validated
// before anything is written so a bad entry does not leave a partial
// import behind.
func (uc *ImportRecords) Execute(_ context.Context, in ImportRecordsInput) (*ImportRecordsOutput, error) {
	content, err := io.ReadAll(in.Reader)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var entries []importEntry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoRecords
	}

	records := make([]*domain.Record, 0, len(entries))
	for i, e := range entries {
		record, err := e.toRecord()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	for _, record := range records {
		if err := uc.records.Add(record); err != nil {
			return nil, fmt.Errorf("save record: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("records", fmt.Sprintf("imported %d records", len(records)))
	}
	return &ImportRecordsOutput{Imported: len(records)}, nil
}

func (e importEntry) toRecord() (*domain.Record, error) {
	duration, err := time.ParseDuration(e.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", e.Duration, err)
	}
	if e.Start.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}

	startMillis := e.Start.UnixMilli()
	record := &domain.Record{
		ID:        startMillis,
		Project:   e.Project,
		StartTime: startMillis,
		Duration:  duration.Milliseconds(),
		Date:      domain.DateFromStart(startMillis),
		Notes:     e.Notes,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}
