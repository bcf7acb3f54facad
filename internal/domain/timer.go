package domain

import (
	"sync"
	"time"
)

// TimerState is the lifecycle state of the single process-wide timer.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
)

// String returns the string representation of the state.
func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Timer is the start/pause/resume/stop state machine. It owns no
// scheduling: the display tick belongs to whoever renders it. One
// instance exists per process and it is not persisted across restarts.
type Timer struct {
	mu          sync.Mutex
	clock       Clock
	state       TimerState
	project     string
	startedAt   time.Time // when timing began, first Start of the session
	resumedAt   time.Time // when the current active interval began
	accumulated time.Duration
}

// NewTimer creates an idle timer using the given clock.
func NewTimer(clock Clock) *Timer {
	return &Timer{clock: clock, state: TimerIdle}
}

// Start begins timing the given project. The project must be non-empty;
// on a validation error no state changes. Starting while paused resumes
// the current session instead.
func (t *Timer) Start(project string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case TimerRunning:
		return ErrTimerAlreadyLive
	case TimerPaused:
		return t.resumeLocked()
	}

	if project == "" {
		return ErrEmptyProject
	}

	now := t.clock.Now()
	t.state = TimerRunning
	t.project = project
	t.startedAt = now
	t.resumedAt = now
	t.accumulated = 0
	return nil
}

// Pause freezes the timer, folding the current active interval into the
// accumulated total.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerRunning {
		return ErrTimerNotRunning
	}
	t.accumulated += t.clock.Now().Sub(t.resumedAt)
	t.state = TimerPaused
	return nil
}

// Resume continues a paused timer. The project is preserved; a new
// active interval begins now.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TimerPaused {
		return ErrTimerNotPaused
	}
	return t.resumeLocked()
}

func (t *Timer) resumeLocked() error {
	t.resumedAt = t.clock.Now()
	t.state = TimerRunning
	return nil
}

// Stop ends the session and returns the resulting record. Paused
// intervals are excluded from the duration: elapsed time sums every
// active interval between start/resume and pause/stop.
func (t *Timer) Stop() (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == TimerIdle {
		return nil, ErrTimerNotRunning
	}

	now := t.clock.Now()
	elapsed := t.accumulated
	if t.state == TimerRunning {
		elapsed += now.Sub(t.resumedAt)
	}

	record := &Record{
		ID:        now.UnixMilli(),
		Project:   t.project,
		StartTime: t.startedAt.UnixMilli(),
		Duration:  elapsed.Milliseconds(),
		Date:      DateFromStart(t.startedAt.UnixMilli()),
	}

	t.state = TimerIdle
	t.project = ""
	t.startedAt = time.Time{}
	t.resumedAt = time.Time{}
	t.accumulated = 0

	return record, nil
}

// Elapsed returns the active time of the current session. Pure read,
// safe to call on every display tick.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case TimerRunning:
		return t.accumulated + t.clock.Now().Sub(t.resumedAt)
	case TimerPaused:
		return t.accumulated
	default:
		return 0
	}
}

// State returns the current lifecycle state.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Project returns the project being timed, empty when idle.
func (t *Timer) Project() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.project
}
