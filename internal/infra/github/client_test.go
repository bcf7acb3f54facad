package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumin/tempo/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testClock = fixedClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

func testConfig() domain.SyncConfig {
	return domain.SyncConfig{Token: "ghp_test", Username: "alice", Repo: "hours"}
}

func testSnapshot() domain.Snapshot {
	return domain.NewSnapshot([]domain.Record{
		{ID: 1, Project: "Alpha", Duration: 65000, Date: "2024-03-01T09:00:00.000Z"},
	}, testClock.now)
}

func TestClient_SyncCreatesWhenAbsent(t *testing.T) {
	var put putRequest
	var gotPath, gotAuth, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")

		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testClock)
	err := client.Sync(context.Background(), testSnapshot(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, "/repos/alice/hours/contents/time-tracker-data.json", gotPath)
	assert.Equal(t, "token ghp_test", gotAuth)
	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)

	// Create carries no version marker.
	assert.Empty(t, put.SHA)
	assert.Equal(t, "Update time tracker data - 2024-03-01T12:00:00Z", put.Message)

	// Content is the base64 of the snapshot document.
	decoded, err := base64.StdEncoding.DecodeString(put.Content)
	require.NoError(t, err)
	var snapshot domain.Snapshot
	require.NoError(t, json.Unmarshal(decoded, &snapshot))
	assert.Equal(t, []string{"Alpha"}, snapshot.Projects)
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, int64(65000), snapshot.Records[0].Duration)
}

func TestClient_SyncUpdatesWithFetchedSHA(t *testing.T) {
	var put putRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(contentsResponse{SHA: "abc123"})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testClock)
	err := client.Sync(context.Background(), testSnapshot(), testConfig())
	require.NoError(t, err)

	// Update carries the previously fetched version marker.
	assert.Equal(t, "abc123", put.SHA)
}

func TestClient_SyncSurfacesWriteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Invalid request"}`))
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testClock)
	err := client.Sync(context.Background(), testSnapshot(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestClient_SyncSurfacesFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, testClock)
	err := client.Sync(context.Background(), testSnapshot(), testConfig())
	assert.Error(t, err)
}

func TestClient_SyncRequiresCompleteConfig(t *testing.T) {
	client := NewClient(testClock)

	err := client.Sync(context.Background(), testSnapshot(), domain.SyncConfig{Token: "t"})
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}
