package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// GetStatsOutput contains the summary statistics.
type GetStatsOutput struct {
	Stats domain.Stats
}

// GetStats summarizes the record set for the stat tiles.
type GetStats struct {
	records domain.RecordRepository
	clock   domain.Clock
}

// NewGetStats creates a new GetStats use case.
func NewGetStats(records domain.RecordRepository, clock domain.Clock) *GetStats {
	return &GetStats{records: records, clock: clock}
}

// Execute computes the stats: distinct project count, total duration in
// hours to one decimal place, and the number of records started today
// in local time.
func (uc *GetStats) Execute(_ context.Context) (*GetStatsOutput, error) {
	records, err := uc.records.All()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	var total int64
	today := 0
	now := uc.clock.Now()
	for _, r := range records {
		total += r.Duration
		if domain.SameLocalDay(r.StartedAt(), now) {
			today++
		}
	}

	return &GetStatsOutput{Stats: domain.Stats{
		ProjectCount:  len(domain.ProjectsOf(records)),
		TotalHours:    fmt.Sprintf("%.1f", float64(total)/3600000.0),
		TodayCount:    today,
		RecordCount:   len(records),
		TotalDuration: total,
	}}, nil
}
