package domain

import (
	"context"
	"time"
)

// RecordRepository manages record persistence. Every mutating call
// persists the full store before returning.
type RecordRepository interface {
	// Add inserts a record at the front of the ordered sequence
	// (most-recent-first). The record's ID may be bumped to keep it
	// unique within the store.
	Add(record *Record) error

	// Remove deletes the record with the given ID. Removing an unknown
	// ID is a no-op, not an error.
	Remove(id int64) error

	// SetNotes updates the notes of the record with the given ID.
	// No-op if the ID is unknown.
	SetNotes(id int64, notes string) error

	// List returns records in insertion order (most-recent-first),
	// optionally restricted to those started on the same local
	// calendar day as filterDate.
	List(filterDate *time.Time) ([]Record, error)

	// All returns every record in order.
	All() ([]Record, error)

	// Projects returns the distinct project labels among stored
	// records.
	Projects() ([]string, error)
}

// Syncer uploads a snapshot of the record store to the remote file
// store. Best effort: one attempt, no retry.
type Syncer interface {
	Sync(ctx context.Context, snapshot Snapshot, cfg SyncConfig) error
}

// ConfigLoader loads the persisted configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// file exists.
	Load() (*Config, error)
}

// ConfigManager persists configuration changes.
type ConfigManager interface {
	// Save writes the configuration file, creating it if needed.
	Save(cfg *Config) error

	// Path returns the location of the configuration file.
	Path() string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger writes scope-tagged log lines to the application log file.
type Logger interface {
	Debug(scope, msg string)
	Info(scope, msg string)
	Warn(scope, msg string)
	Error(scope, msg string)
}
