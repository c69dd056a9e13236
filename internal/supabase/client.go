package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client executes SQL against a hosted project through the exec_sql RPC.
type Client struct {
	// BaseURL is derived from the project reference; tests may point it at a
	// local server.
	BaseURL string

	serviceKey string
	httpClient *http.Client
}

// NewClient builds a client for the given project using a service-role key.
func NewClient(projectRef, serviceKey string) *Client {
	return &Client{
		BaseURL:    fmt.Sprintf("https://%s.supabase.co", projectRef),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// ExecSQL posts the script to /rest/v1/rpc/exec_sql. HTTP 200 and 204 are
// success; any other status surfaces the response body verbatim.
func (c *Client) ExecSQL(ctx context.Context, script string) error {
	body, err := json.Marshal(map[string]string{"sql": script})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.BaseURL + "/rest/v1/rpc/exec_sql"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
}
