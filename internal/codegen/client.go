package codegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jask/tkdraft/internal/layout"
)

// Client talks to the code-generation service.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for the /generate_code endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Generate POSTs the widget snapshot and returns the generated script.
// A non-2xx response surfaces the service's detail message when present,
// otherwise a generic one; transport failures are wrapped as-is.
func (c *Client) Generate(ctx context.Context, widgets []layout.Widget) (string, error) {
	body, err := json.Marshal(Payload{Widgets: widgets})
	if err != nil {
		return "", fmt.Errorf("encode layout: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("code generator unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			return "", fmt.Errorf("code generation failed: %s", e.Detail)
		}
		return "", fmt.Errorf("code generation failed (HTTP %d)", resp.StatusCode)
	}

	var out codeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Code, nil
}
