package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
	"github.com/takumin/tempo/internal/testutil"
)

func TestSetConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{}
	uc := NewSetConfig(&testutil.MockConfigLoader{}, manager, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SetConfigInput{
		Token:    " ghp_test ",
		Username: "alice",
		Repo:     "hours",
		AutoSync: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://alice.github.io/hours/dashboard.html", out.DashboardURL)
	assert.True(t, out.AutoSync)

	require.NotNil(t, manager.Saved)
	assert.Equal(t, "ghp_test", manager.Saved.Sync.Token)
	assert.Equal(t, "alice", manager.Saved.Sync.Username)
	// Untouched sections are preserved.
	assert.Equal(t, "info", manager.Saved.Log.Level)
}

func TestSetConfig_Execute_Incomplete(t *testing.T) {
	manager := &testutil.MockConfigManager{}
	uc := NewSetConfig(&testutil.MockConfigLoader{}, manager, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), SetConfigInput{
		Token:    "ghp_test",
		Username: "alice",
	})
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
	assert.Nil(t, manager.Saved)
}

func TestShowConfig_Execute(t *testing.T) {
	cfg := autoSyncConfig()
	uc := NewShowConfig(&testutil.MockConfigLoader{Config: cfg}, &testutil.MockConfigManager{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cfg, out.Config)
	assert.Equal(t, "https://alice.github.io/hours/dashboard.html", out.DashboardURL)
	assert.NotEmpty(t, out.Path)
}
