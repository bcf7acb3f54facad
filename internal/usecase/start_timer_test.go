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

func newTestClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestStartTimer_Execute_FreeTextWins(t *testing.T) {
	timer := domain.NewTimer(newTestClock())
	uc := NewStartTimer(timer, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), StartTimerInput{
		Project:  "Alpha",
		Selected: "Beta",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpha", out.Project)
	assert.False(t, out.Resumed)
	assert.Equal(t, domain.TimerRunning, timer.State())
}

func TestStartTimer_Execute_FallsBackToSelection(t *testing.T) {
	timer := domain.NewTimer(newTestClock())
	uc := NewStartTimer(timer, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), StartTimerInput{
		Project:  "   ",
		Selected: "Beta",
	})

	require.NoError(t, err)
	assert.Equal(t, "Beta", out.Project)
}

func TestStartTimer_Execute_BothEmpty(t *testing.T) {
	timer := domain.NewTimer(newTestClock())
	uc := NewStartTimer(timer, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), StartTimerInput{})

	assert.ErrorIs(t, err, domain.ErrEmptyProject)
	// Timer state is unchanged.
	assert.Equal(t, domain.TimerIdle, timer.State())
}

func TestStartTimer_Execute_ResumesPausedSession(t *testing.T) {
	clock := newTestClock()
	timer := domain.NewTimer(clock)
	require.NoError(t, timer.Start("Alpha"))
	clock.Advance(10 * time.Second)
	require.NoError(t, timer.Pause())

	uc := NewStartTimer(timer, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), StartTimerInput{})

	require.NoError(t, err)
	assert.True(t, out.Resumed)
	assert.Equal(t, "Alpha", out.Project)
	assert.Equal(t, domain.TimerRunning, timer.State())
}
