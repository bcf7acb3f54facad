package usecase

import (
	"context"
	"fmt"

	"github.com/takumin/tempo/internal/domain"
)

// PauseTimerOutput contains the result of pausing the timer.
type PauseTimerOutput struct {
	Project   string // The project being timed
	ElapsedMs int64  // Frozen elapsed milliseconds at pause time
}

// PauseTimer freezes the running timer.
type PauseTimer struct {
	timer  *domain.Timer
	logger domain.Logger
}

// NewPauseTimer creates a new PauseTimer use case.
func NewPauseTimer(timer *domain.Timer, logger domain.Logger) *PauseTimer {
	return &PauseTimer{timer: timer, logger: logger}
}

// Execute pauses the timer.
func (uc *PauseTimer) Execute(_ context.Context) (*PauseTimerOutput, error) {
	if err := uc.timer.Pause(); err != nil {
		return nil, err
	}

	out := &PauseTimerOutput{
		Project:   uc.timer.Project(),
		ElapsedMs: uc.timer.Elapsed().Milliseconds(),
	}
	if uc.logger != nil {
		uc.logger.Info("timer", fmt.Sprintf("paused: %q at %s", out.Project, domain.FormatDuration(out.ElapsedMs)))
	}
	return out, nil
}
