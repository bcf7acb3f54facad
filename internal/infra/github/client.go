// Package github implements record sync against the GitHub contents API.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/takumin/tempo/internal/domain"
)

// DefaultBaseURL is the GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Ensure Client implements domain.Syncer.
var _ domain.Syncer = (*Client)(nil)

// Client performs the idempotent create-or-update of the single synced
// data file. One attempt per call; failures are returned, never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clock      domain.Clock
}

// NewClient creates a Client with a sane request timeout.
func NewClient(clock domain.Clock) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		clock:      clock,
	}
}

// NewClientWithBaseURL creates a Client against a custom endpoint.
// Used by tests to point at an httptest server.
func NewClientWithBaseURL(baseURL string, clock domain.Clock) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		clock:      clock,
	}
}

// contentsResponse is the subset of the contents API response we read.
type contentsResponse struct {
	SHA string `json:"sha"`
}

// putRequest is the body of the contents API write call.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// Sync serializes the snapshot and writes it to the configured
// repository. When the remote file already exists its sha is sent back
// as the version marker so the write is a conditional update; otherwise
// the file is created.
func (c *Client) Sync(ctx context.Context, snapshot domain.Snapshot, cfg domain.SyncConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	sha, err := c.fetchSHA(ctx, cfg)
	if err != nil {
		return err
	}

	return c.put(ctx, cfg, payload, sha)
}

// fetchSHA returns the current version marker of the remote file, or
// empty when the file does not exist yet.
func (c *Client) fetchSHA(ctx context.Context, cfg domain.SyncConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(cfg), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req, cfg)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch remote file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Absent, the write below will create it.
		return "", nil
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("fetch remote file: unexpected status %s", resp.Status)
	}

	var file contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", fmt.Errorf("parse remote file metadata: %w", err)
	}
	return file.SHA, nil
}

func (c *Client) put(ctx context.Context, cfg domain.SyncConfig, payload []byte, sha string) error {
	body := putRequest{
		Message: fmt.Sprintf("Update time tracker data - %s", c.clock.Now().UTC().Format(time.RFC3339)),
		Content: base64.StdEncoding.EncodeToString(payload),
		SHA:     sha,
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(cfg), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req, cfg)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload records: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the error message.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload records: status %s: %s", resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}

func (c *Client) contentsURL(cfg domain.SyncConfig) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, cfg.Username, cfg.Repo, domain.DataFileName)
}

func (c *Client) setHeaders(req *http.Request, cfg domain.SyncConfig) {
	req.Header.Set("Authorization", "token "+cfg.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
