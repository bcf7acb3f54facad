package tui

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/testutil"
)

func TestView_ZeroWidthShowsLoading(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())
}

func TestView_IdleTimer(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40

	out := m.View()
	assert.Contains(t, out, "tempo")
	assert.Contains(t, out, "IDLE")
	assert.Contains(t, out, "00:00:00")
	assert.Contains(t, out, "No records yet")
}

func TestView_RunningTimerShowsProjectAndClock(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40

	require.NoError(t, m.container.Timer.Start("website"))
	m.container.Clock.(*testutil.MockClock).Advance(65 * time.Second)

	out := m.View()
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "website")
	assert.Contains(t, out, "00:01:05")
}

func TestView_RecordListAndTiles(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.records = []domain.Record{
		{ID: 1, Project: "website", StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local).UnixMilli(), Duration: 65000, Notes: "standup"},
	}
	m.stats = domain.Stats{ProjectCount: 2, TotalHours: "1.8", TodayCount: 1, RecordCount: 3}

	out := m.View()
	assert.Contains(t, out, "website")
	assert.Contains(t, out, "1m 5s")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "1.8h")
	assert.Contains(t, out, "projects")
}

func TestView_ConfirmDialog(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.records = []domain.Record{{ID: 42, Project: "website", Duration: 65000}}
	m.cursor = 0
	m.mode = ModeConfirm
	m.confirmID = 42

	out := m.View()
	assert.Contains(t, out, "Delete record")
	assert.Contains(t, out, "website")
	assert.Contains(t, out, "(y/N)")
}

func TestView_ShareWithoutConfig(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.mode = ModeShare

	out := m.View()
	assert.Contains(t, out, "Sync is not configured yet")
}

func TestView_ShareWithDashboardURL(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.mode = ModeShare
	m.dashboardURL = "https://alice.github.io/hours/dashboard.html"

	out := m.View()
	assert.Contains(t, out, "https://alice.github.io/hours/dashboard.html")
}

func TestView_ConfigForm(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.openConfigForm()

	out := m.View()
	assert.Contains(t, out, "Sync configuration")
	assert.Contains(t, out, "Token")
	assert.Contains(t, out, "Username")
	assert.Contains(t, out, "Auto-sync")
}

func TestView_ProjectPickerListsKnownProjects(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.projects = []string{"website", "api"}
	m.mode = ModeProject
	m.projectCursor = 1

	out := m.View()
	assert.Contains(t, out, "Project:")
	assert.Contains(t, out, "website")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "api")
}

func TestView_ProjectPickerWithoutKnownProjects(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.mode = ModeProject
	m.projectCursor = -1

	out := m.View()
	assert.Contains(t, out, "Project:")
	assert.NotContains(t, out, "or pick with")
}

func TestClip_MultibyteSafe(t *testing.T) {
	assert.Equal(t, "短い", clip("短い", 10))
	got := clip("非常に長いプロジェクト名です", 10)
	assert.Equal(t, "非常に長いプロ...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestView_DateFilterBadge(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	m.filterDate = &date

	out := m.View()
	assert.Contains(t, out, "Filtered: 2024-03-01")
}
