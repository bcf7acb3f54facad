package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestTimer_StartStop(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)
	started := clock.now

	require.NoError(t, timer.Start("Alpha"))
	assert.Equal(t, TimerRunning, timer.State())
	assert.Equal(t, "Alpha", timer.Project())

	clock.advance(65 * time.Second)
	record, err := timer.Stop()
	require.NoError(t, err)

	assert.Equal(t, "Alpha", record.Project)
	assert.Equal(t, int64(65000), record.Duration)
	assert.Equal(t, started.UnixMilli(), record.StartTime)
	assert.Equal(t, clock.now.UnixMilli(), record.ID)
	assert.Equal(t, DateFromStart(record.StartTime), record.Date)

	// Timer is fully reset.
	assert.Equal(t, TimerIdle, timer.State())
	assert.Equal(t, "", timer.Project())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestTimer_StartEmptyProject(t *testing.T) {
	timer := NewTimer(newFakeClock())

	err := timer.Start("")
	assert.ErrorIs(t, err, ErrEmptyProject)
	assert.Equal(t, TimerIdle, timer.State())
}

func TestTimer_StartWhileRunning(t *testing.T) {
	timer := NewTimer(newFakeClock())
	require.NoError(t, timer.Start("Alpha"))

	err := timer.Start("Beta")
	assert.ErrorIs(t, err, ErrTimerAlreadyLive)
	assert.Equal(t, "Alpha", timer.Project())
}

func TestTimer_PauseExcludesGap(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	require.NoError(t, timer.Start("Alpha"))
	clock.advance(10 * time.Second)
	require.NoError(t, timer.Pause())
	assert.Equal(t, TimerPaused, timer.State())

	// Elapsed is frozen while paused.
	clock.advance(5 * time.Minute)
	assert.Equal(t, 10*time.Second, timer.Elapsed())

	record, err := timer.Stop()
	require.NoError(t, err)
	assert.Equal(t, int64(10000), record.Duration)
}

func TestTimer_MultiplePauseResumeCyclesSum(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	require.NoError(t, timer.Start("Alpha"))
	clock.advance(10 * time.Second)
	require.NoError(t, timer.Pause())
	clock.advance(time.Hour) // paused gap, must not count

	require.NoError(t, timer.Resume())
	assert.Equal(t, TimerRunning, timer.State())
	assert.Equal(t, "Alpha", timer.Project())
	clock.advance(20 * time.Second)
	require.NoError(t, timer.Pause())
	clock.advance(time.Hour)

	// Start while paused resumes the session.
	require.NoError(t, timer.Start(""))
	clock.advance(30 * time.Second)

	record, err := timer.Stop()
	require.NoError(t, err)
	assert.Equal(t, int64(60000), record.Duration)
}

func TestTimer_InvalidTransitions(t *testing.T) {
	timer := NewTimer(newFakeClock())

	assert.ErrorIs(t, timer.Pause(), ErrTimerNotRunning)
	assert.ErrorIs(t, timer.Resume(), ErrTimerNotPaused)
	_, err := timer.Stop()
	assert.ErrorIs(t, err, ErrTimerNotRunning)

	require.NoError(t, timer.Start("Alpha"))
	assert.ErrorIs(t, timer.Resume(), ErrTimerNotPaused)
}

func TestTimer_ElapsedWhileRunning(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	require.NoError(t, timer.Start("Alpha"))
	clock.advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, timer.Elapsed())
}
