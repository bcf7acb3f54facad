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

func TestSyncRecords_Execute(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := testutil.NewMockRecordRepository()
	require.NoError(t, repo.Add(&domain.Record{ID: 1, Project: "Alpha", Duration: 1000}))
	require.NoError(t, repo.Add(&domain.Record{ID: 2, Project: "Beta", Duration: 2000}))

	syncer := &testutil.MockSyncer{}
	loader := &testutil.MockConfigLoader{Config: autoSyncConfig()}
	uc := NewSyncRecords(repo, loader, syncer, clock, testutil.NopLogger{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.RecordCount)
	assert.Equal(t, "https://alice.github.io/hours/dashboard.html", out.DashboardURL)

	require.Equal(t, 1, syncer.Calls())
	snapshot := syncer.Snapshots[0]
	assert.Len(t, snapshot.Records, 2)
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, snapshot.Projects)
	assert.Equal(t, "2024-03-01T12:00:00Z", snapshot.LastSync)
	assert.Equal(t, "ghp_test", syncer.Configs[0].Token)
}

func TestSyncRecords_Execute_NotConfigured(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Now()}
	syncer := &testutil.MockSyncer{}
	uc := NewSyncRecords(testutil.NewMockRecordRepository(), &testutil.MockConfigLoader{}, syncer, clock, testutil.NopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrSyncNotConfigured)
	assert.Equal(t, 0, syncer.Calls())
}

func TestSyncRecords_Execute_SyncerFailureSurfaces(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Now()}
	syncer := &testutil.MockSyncer{SyncErr: assert.AnError}
	loader := &testutil.MockConfigLoader{Config: autoSyncConfig()}
	uc := NewSyncRecords(testutil.NewMockRecordRepository(), loader, syncer, clock, testutil.NopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
