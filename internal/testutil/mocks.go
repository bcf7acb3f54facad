// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockRecordRepository is an in-memory test double for
// domain.RecordRepository. Fields are ordered to minimize memory padding.
type MockRecordRepository struct {
	Records []domain.Record
	AddErr  error
	ListErr error
}

// NewMockRecordRepository creates an empty MockRecordRepository.
func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

// Add prepends a record.
func (m *MockRecordRepository) Add(record *domain.Record) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if err := record.Validate(); err != nil {
		return err
	}
	for m.idTaken(record.ID) {
		record.ID++
	}
	m.Records = append([]domain.Record{*record}, m.Records...)
	return nil
}

func (m *MockRecordRepository) idTaken(id int64) bool {
	for _, r := range m.Records {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes by ID, no-op when absent.
func (m *MockRecordRepository) Remove(id int64) error {
	kept := m.Records[:0]
	for _, r := range m.Records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.Records = kept
	return nil
}

// SetNotes updates notes by ID, no-op when absent.
func (m *MockRecordRepository) SetNotes(id int64, notes string) error {
	for i := range m.Records {
		if m.Records[i].ID == id {
			m.Records[i].Notes = notes
			break
		}
	}
	return nil
}

// List returns records, optionally filtered to a local calendar day.
func (m *MockRecordRepository) List(filterDate *time.Time) ([]domain.Record, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if filterDate == nil {
		return append([]domain.Record(nil), m.Records...), nil
	}
	var filtered []domain.Record
	for _, r := range m.Records {
		if domain.SameLocalDay(r.StartedAt(), *filterDate) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// All returns every record.
func (m *MockRecordRepository) All() ([]domain.Record, error) {
	return m.List(nil)
}

// Projects returns the distinct project labels.
func (m *MockRecordRepository) Projects() ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return domain.ProjectsOf(m.Records), nil
}

// MockSyncer records sync calls for assertions.
type MockSyncer struct {
	mu        sync.Mutex
	Snapshots []domain.Snapshot
	Configs   []domain.SyncConfig
	SyncErr   error
}

// Sync records the call and returns the configured error.
func (m *MockSyncer) Sync(_ context.Context, snapshot domain.Snapshot, cfg domain.SyncConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots = append(m.Snapshots, snapshot)
	m.Configs = append(m.Configs, cfg)
	return m.SyncErr
}

// Calls returns the number of sync invocations.
func (m *MockSyncer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Snapshots)
}

// MockConfigLoader serves a fixed configuration.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager captures saved configurations.
type MockConfigManager struct {
	Saved   *domain.Config
	SaveErr error
}

// Save captures the config.
func (m *MockConfigManager) Save(cfg *domain.Config) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = cfg
	return nil
}

// Path returns a fake path.
func (m *MockConfigManager) Path() string {
	return "/tmp/tempo-test/config.toml"
}

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug discards the line.
func (NopLogger) Debug(string, string) {}

// Info discards the line.
func (NopLogger) Info(string, string) {}

// Warn discards the line.
func (NopLogger) Warn(string, string) {}

// Error discards the line.
func (NopLogger) Error(string, string) {}
