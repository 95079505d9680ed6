// Package sync fetches flag snapshots from a peer instance for the
// copy-from-remote admin action.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// SnapshotItem is one flag-shaped record in a remote snapshot. The remote
// updated_at is deliberately absent: local bookkeeping is re-derived on
// write.
type SnapshotItem struct {
	Name     string   `json:"name"`
	IsActive bool     `json:"is_active"`
	Groups   []string `json:"groups"`
	Version  *int     `json:"version"`
	Comment  string   `json:"comment"`
	TTLDays  int      `json:"ttl"`
}

type snapshotResponse struct {
	Result []SnapshotItem `json:"result"`
}

// Client pulls the full flag snapshot from a configured peer URL with a
// bounded timeout. Any fetch or decode failure aborts the whole sync
// before a single write happens.
type Client struct {
	url        string
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient creates a snapshot client. A zero timeout falls back to ten
// seconds.
func NewClient(url string, timeout time.Duration, logger logger.Interface) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Configured reports whether a peer URL is set.
func (c *Client) Configured() bool { return c.url != "" }

// FetchSnapshot retrieves and decodes the remote flag list.
func (c *Client) FetchSnapshot(ctx context.Context) ([]SnapshotItem, error) {
	if c.url == "" {
		return nil, errors.NewUpstreamError("no sync source configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("snapshot fetch failed", "url", c.url, "error", err)
		return nil, errors.NewUpstreamError("failed to fetch remote snapshot")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorw("snapshot fetch returned non-200", "url", c.url, "status", resp.StatusCode)
		return nil, errors.NewUpstreamError(fmt.Sprintf("remote snapshot returned status %d", resp.StatusCode))
	}

	var snapshot snapshotResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		c.logger.Errorw("snapshot decode failed", "url", c.url, "error", err)
		return nil, errors.NewUpstreamError("failed to decode remote snapshot")
	}

	return snapshot.Result, nil
}
