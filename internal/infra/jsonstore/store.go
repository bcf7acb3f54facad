// Package jsonstore provides a JSON file-based implementation of
// RecordRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// Ensure Store implements domain.RecordRepository.
var _ domain.RecordRepository = (*Store)(nil)

// Store implements domain.RecordRepository using a single JSON file.
// The persisted document is a bare array of records, most-recent-first,
// the same document the sync client uploads inside its snapshot.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path. The file does not
// need to exist; a missing file reads as an empty store.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Add inserts a record at the front and persists the store. The ID is
// bumped past any collision so uniqueness is owned by the store.
func (s *Store) Add(record *domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	return s.withLockWrite(func(records []domain.Record) ([]domain.Record, error) {
		for idTaken(records, record.ID) {
			record.ID++
		}
		return append([]domain.Record{*record}, records...), nil
	})
}

// Remove deletes the record with the given ID. Unknown IDs are a no-op.
func (s *Store) Remove(id int64) error {
	return s.withLockWrite(func(records []domain.Record) ([]domain.Record, error) {
		kept := records[:0]
		for _, r := range records {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}

// SetNotes updates the notes of the record with the given ID. Unknown
// IDs are a no-op.
func (s *Store) SetNotes(id int64, notes string) error {
	return s.withLockWrite(func(records []domain.Record) ([]domain.Record, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Notes = notes
				break
			}
		}
		return records, nil
	})
}

// List returns records in insertion order, optionally restricted to the
// local calendar day of filterDate.
func (s *Store) List(filterDate *time.Time) ([]domain.Record, error) {
	records, err := s.All()
	if err != nil {
		return nil, err
	}
	if filterDate == nil {
		return records, nil
	}
	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if domain.SameLocalDay(r.StartedAt(), *filterDate) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// All returns every record in order.
func (s *Store) All() ([]domain.Record, error) {
	var records []domain.Record
	err := s.withLock(func(data []domain.Record) error {
		records = data
		return nil
	})
	return records, err
}

// Projects returns the distinct project labels among stored records.
func (s *Store) Projects() ([]string, error) {
	records, err := s.All()
	if err != nil {
		return nil, err
	}
	return domain.ProjectsOf(records), nil
}

func idTaken(records []domain.Record, id int64) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func([]domain.Record) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	records, err := s.read()
	if err != nil {
		return err
	}

	return fn(records)
}

// withLockWrite executes fn with an exclusive (write) lock and persists
// the result.
func (s *Store) withLockWrite(fn func([]domain.Record) ([]domain.Record, error)) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	records, err := s.read()
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return s.write(records)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() ([]domain.Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing store reads as empty.
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return records, nil
}

func (s *Store) write(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
