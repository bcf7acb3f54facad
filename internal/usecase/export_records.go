package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// ExportFormat selects the export serialization.
type ExportFormat string

// Supported export formats.
const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// ExportRecordsInput contains the parameters for exporting.
type ExportRecordsInput struct {
	Writer io.Writer
	Format ExportFormat
}

// ExportRecordsOutput contains the result of exporting.
type ExportRecordsOutput struct {
	RecordCount int
}

// ExportRecords serializes the full record set. Exporting an empty
// store is a validation error; nothing is written.
type ExportRecords struct {
	records domain.RecordRepository
	clock   domain.Clock
}

// NewExportRecords creates a new ExportRecords use case.
func NewExportRecords(records domain.RecordRepository, clock domain.Clock) *ExportRecords {
	return &ExportRecords{records: records, clock: clock}
}

// Execute writes the export document.
func (uc *ExportRecords) Execute(_ context.Context, in ExportRecordsInput) (*ExportRecordsOutput, error) {
	records, err := uc.records.All()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoRecords
	}

	switch in.Format {
	case ExportCSV:
		err = writeCSV(in.Writer, records)
	case ExportJSON:
		err = writeJSON(in.Writer, records, uc.clock.Now())
	default:
		return nil, fmt.Errorf("unknown export format %q", in.Format)
	}
	if err != nil {
		return nil, err
	}
	return &ExportRecordsOutput{RecordCount: len(records)}, nil
}

// writeCSV emits a header row plus one row per record with every field
// quoted, the format the original dashboard tooling consumes.
func writeCSV(w io.Writer, records []domain.Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Project", "Start Time", "Duration", "Notes"})
	for _, r := range records {
		rows = append(rows, []string{
			r.Project,
			r.StartedAt().Local().Format("2006-01-02 15:04:05"),
			domain.FormatDuration(r.Duration),
			r.Notes,
		})
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, records []domain.Record, now time.Time) error {
	doc := domain.Export{
		Records:    records,
		Projects:   domain.ProjectsOf(records),
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
