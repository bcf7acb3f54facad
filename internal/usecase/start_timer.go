// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/takumin/tempo/internal/domain"
)

// StartTimerInput contains the parameters for starting the timer.
type StartTimerInput struct {
	Project  string // Free-text project name, takes precedence when non-empty
	Selected string // Project chosen from the known-project list
}

// StartTimerOutput contains the result of starting the timer.
type StartTimerOutput struct {
	Project string // The project now being timed
	Resumed bool   // True when a paused session was resumed
}

// StartTimer starts a new timing session, or resumes a paused one.
type StartTimer struct {
	timer  *domain.Timer
	logger domain.Logger
}

// NewStartTimer creates a new StartTimer use case.
func NewStartTimer(timer *domain.Timer, logger domain.Logger) *StartTimer {
	return &StartTimer{timer: timer, logger: logger}
}

// Execute starts timing. The free-text project wins over the selection
// when both are present; with the timer paused the session resumes and
// both inputs are ignored.
func (uc *StartTimer) Execute(_ context.Context, in StartTimerInput) (*StartTimerOutput, error) {
	resumed := uc.timer.State() == domain.TimerPaused

	project := strings.TrimSpace(in.Project)
	if project == "" {
		project = strings.TrimSpace(in.Selected)
	}

	if err := uc.timer.Start(project); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		if resumed {
			uc.logger.Info("timer", fmt.Sprintf("resumed: %q", uc.timer.Project()))
		} else {
			uc.logger.Info("timer", fmt.Sprintf("started: %q", project))
		}
	}

	return &StartTimerOutput{Project: uc.timer.Project(), Resumed: resumed}, nil
}
