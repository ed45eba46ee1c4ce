// Package dashboard polls the account-manager collaborator endpoints and
// caches the latest dashboard figures. Each poll tick is independent: a
// failed fetch leaves the previous figures in place and never stops the
// polling loop.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/newthinker/tradedeck/internal/core"
)

// Client fetches account and notification data from the account manager.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a dashboard client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchAccountStatus fetches per-account connection status.
func (c *Client) FetchAccountStatus(ctx context.Context) ([]core.AccountStatus, error) {
	var statuses []core.AccountStatus
	if err := c.get(ctx, "/api/accounts/status", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// FetchAccountSummary fetches aggregate balance, positions and P&L.
func (c *Client) FetchAccountSummary(ctx context.Context) (*core.AccountSummary, error) {
	var summary core.AccountSummary
	if err := c.get(ctx, "/api/accounts/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FetchNotificationCount fetches the pending notification count.
func (c *Client) FetchNotificationCount(ctx context.Context) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/notifications", &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return core.WrapError(core.ErrRemoteFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return core.WrapError(core.ErrRemoteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.WrapError(core.ErrRemoteFailed,
			fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return core.WrapError(core.ErrRemoteFailed, fmt.Errorf("decoding %s: %w", path, err))
	}
	return nil
}
