package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/testutil"
)

func TestImportRecords_Execute(t *testing.T) {
	repo := testutil.NewMockRecordRepository()
	uc := NewImportRecords(repo, testutil.NopLogger{})

	input := `
- project: Alpha
  start: 2024-03-01T09:00:00Z
  duration: 1h30m
  notes: offsite planning
- project: Beta
  start: 2024-03-01T14:00:00Z
  duration: 45m
`
	out, err := uc.Execute(context.Background(), ImportRecordsInput{Reader: strings.NewReader(input)})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Imported)

	require.Len(t, repo.Records, 2)
	// Add prepends, so the last file entry is at the front.
	assert.Equal(t, "Beta", repo.Records[0].Project)
	assert.Equal(t, int64(45*60*1000), repo.Records[0].Duration)
	assert.Equal(t, "Alpha", repo.Records[1].Project)
	assert.Equal(t, int64(90*60*1000), repo.Records[1].Duration)
	assert.Equal(t, "offsite planning", repo.Records[1].Notes)
	assert.Equal(t, domain.DateFromStart(repo.Records[1].StartTime), repo.Records[1].Date)
}

func TestImportRecords_Execute_BadEntryLeavesStoreUntouched(t *testing.T) {
	repo := testutil.NewMockRecordRepository()
	uc := NewImportRecords(repo, testutil.NopLogger{})

	input := `
- project: Alpha
  start: 2024-03-01T09:00:00Z
  duration: 1h
- project: ""
  start: 2024-03-01T10:00:00Z
  duration: 1h
`
	_, err := uc.Execute(context.Background(), ImportRecordsInput{Reader: strings.NewReader(input)})
	assert.ErrorIs(t, err, domain.ErrEmptyProject)
	assert.Empty(t, repo.Records)
}

func TestImportRecords_Execute_InvalidDuration(t *testing.T) {
	uc := NewImportRecords(testutil.NewMockRecordRepository(), testutil.NopLogger{})

	input := `
- project: Alpha
  start: 2024-03-01T09:00:00Z
  duration: ninety minutes
`
	_, err := uc.Execute(context.Background(), ImportRecordsInput{Reader: strings.NewReader(input)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestImportRecords_Execute_EmptyFile(t *testing.T) {
	uc := NewImportRecords(testutil.NewMockRecordRepository(), testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportRecordsInput{Reader: strings.NewReader("")})
	assert.ErrorIs(t, err, domain.ErrNoRecords)
}
