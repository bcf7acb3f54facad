package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/testutil"
)

func TestGetStats_Execute(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 1, 18, 0, 0, 0, time.Local)}
	repo := testutil.NewMockRecordRepository()

	today := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	require.NoError(t, repo.Add(&domain.Record{ID: 1, Project: "Alpha", StartTime: yesterday.UnixMilli(), Duration: 3600000}))
	require.NoError(t, repo.Add(&domain.Record{ID: 2, Project: "Beta", StartTime: today.UnixMilli(), Duration: 1800000}))
	require.NoError(t, repo.Add(&domain.Record{ID: 3, Project: "Alpha", StartTime: today.UnixMilli(), Duration: 900000}))

	out, err := NewGetStats(repo, clock).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Stats.ProjectCount)
	assert.Equal(t, "1.8", out.Stats.TotalHours) // 6300000ms / 3600000
	assert.Equal(t, 2, out.Stats.TodayCount)
	assert.Equal(t, 3, out.Stats.RecordCount)
	assert.Equal(t, int64(6300000), out.Stats.TotalDuration)
}

func TestGetStats_Execute_ShortSessionRoundsToZero(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Now()}
	repo := testutil.NewMockRecordRepository()
	require.NoError(t, repo.Add(&domain.Record{
		ID:        1,
		Project:   "Alpha",
		StartTime: clock.NowTime.UnixMilli(),
		Duration:  65000,
	}))

	out, err := NewGetStats(repo, clock).Execute(context.Background())
	require.NoError(t, err)

	// 65000ms is about 0.018h, one decimal place rounds to 0.0.
	assert.Equal(t, "0.0", out.Stats.TotalHours)
	assert.Equal(t, 1, out.Stats.TodayCount)
}

func TestGetStats_Execute_EmptyStore(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Now()}
	out, err := NewGetStats(testutil.NewMockRecordRepository(), clock).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Stats.ProjectCount)
	assert.Equal(t, "0.0", out.Stats.TotalHours)
	assert.Equal(t, 0, out.Stats.TodayCount)
}
