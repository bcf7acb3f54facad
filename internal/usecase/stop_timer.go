package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// StopTimerOutput contains the result of stopping the timer.
type StopTimerOutput struct {
	Record   domain.Record // The record that was created
	AutoSync bool          // True when the caller should trigger a sync
}

// StopTimer ends the current session and stores the resulting record.
type StopTimer struct {
	timer        *domain.Timer
	records      domain.RecordRepository
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewStopTimer creates a new StopTimer use case.
func NewStopTimer(timer *domain.Timer, records domain.RecordRepository, configLoader domain.ConfigLoader, logger domain.Logger) *StopTimer {
	return &StopTimer{
		timer:        timer,
		records:      records,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute stops the timer and persists the new record. AutoSync in the
// output tells the caller to fire a best-effort sync; a sync failure
// never rolls back the stop.
func (uc *StopTimer) Execute(_ context.Context) (*StopTimerOutput, error) {
	record, err := uc.timer.Stop()
	if err != nil {
		return nil, err
	}

	if err := uc.records.Add(record); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("timer", fmt.Sprintf("stopped: %q after %s", record.Project, domain.FormatDuration(record.Duration)))
	}

	return &StopTimerOutput{
		Record:   *record,
		AutoSync: shouldAutoSync(uc.configLoader),
	}, nil
}
