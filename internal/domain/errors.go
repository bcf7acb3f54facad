package domain

import "errors"

// Domain errors.
var (
	ErrEmptyProject      = errors.New("project name cannot be empty")
	ErrNegativeDuration  = errors.New("duration cannot be negative")
	ErrTimerNotRunning   = errors.New("no timer is running")
	ErrTimerNotPaused    = errors.New("timer is not paused")
	ErrTimerAlreadyLive  = errors.New("a timer is already running")
	ErrNoRecords         = errors.New("no records to export")
	ErrConfigIncomplete  = errors.New("github token, username and repo are all required")
	ErrSyncNotConfigured = errors.New("github sync is not configured (run 'tempo config set' first)")
)
