// Package domain contains core business entities and interfaces.
package domain

import (
	"time"
)

// DataFileName is the fixed name of the synced remote resource.
const DataFileName = "time-tracker-data.json"

// Record represents one completed timing session.
// JSON field names are fixed by the synced wire format; the published
// dashboard reads the same document.
type Record struct {
	ID        int64  `json:"id"`        // Unix milliseconds at stop time, unique within the store
	Project   string `json:"project"`   // Project label (required)
	StartTime int64  `json:"startTime"` // Unix milliseconds when timing began
	Duration  int64  `json:"duration"`  // Active milliseconds, excludes paused intervals
	Date      string `json:"date"`      // RFC 3339 timestamp derived from StartTime
	Notes     string `json:"notes"`     // Free text, mutable after creation
}

// StartedAt returns the start instant as a time.Time.
func (r *Record) StartedAt() time.Time {
	return time.UnixMilli(r.StartTime)
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if r.Project == "" {
		return ErrEmptyProject
	}
	if r.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// DateFromStart derives the Date field value from a start instant.
// Matches the ISO-8601 UTC format the dashboard expects.
func DateFromStart(startMillis int64) string {
	return time.UnixMilli(startMillis).UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// SameLocalDay reports whether two instants fall on the same calendar
// day in local time.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// ProjectsOf returns the distinct project labels among records,
// first-seen order.
func ProjectsOf(records []Record) []string {
	seen := make(map[string]struct{}, len(records))
	var projects []string
	for _, r := range records {
		if _, ok := seen[r.Project]; ok {
			continue
		}
		seen[r.Project] = struct{}{}
		projects = append(projects, r.Project)
	}
	return projects
}

// Snapshot is the document uploaded by the sync client.
type Snapshot struct {
	Records  []Record `json:"records"`
	Projects []string `json:"projects"`
	LastSync string   `json:"lastSync"`
}

// NewSnapshot builds a sync snapshot from the full record set.
func NewSnapshot(records []Record, now time.Time) Snapshot {
	return Snapshot{
		Records:  records,
		Projects: ProjectsOf(records),
		LastSync: now.UTC().Format(time.RFC3339),
	}
}

// Export is the document produced by the JSON exporter.
type Export struct {
	Records    []Record `json:"records"`
	Projects   []string `json:"projects"`
	ExportDate string   `json:"exportDate"`
}

// Stats summarizes the record set for the stat tiles.
type Stats struct {
	TotalHours    string // Total duration in hours, one decimal place
	ProjectCount  int    // Distinct project labels
	TodayCount    int    // Records started today, local time
	RecordCount   int    // All records
	TotalDuration int64  // Total duration in milliseconds
}
