package node

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
)

// Report is the relay state posted to the uplink.
type Report struct {
	Node   string  `json:"node"`
	Relays [2]bool `json:"relays"`
}

// Uplink delivers a Report to whatever collects node states.
type Uplink interface {
	Send(ctx context.Context, r Report) error
}

// HTTPUplink posts reports as JSON.
type HTTPUplink struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// NewHTTPUplink returns an uplink posting to url with a per-request timeout.
func NewHTTPUplink(url string, timeout time.Duration) *HTTPUplink {
	return &HTTPUplink{URL: url, Timeout: timeout, Client: http.DefaultClient}
}

func (u *HTTPUplink) Send(ctx context.Context, r Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("uplink: encode: %w", err)
	}

	if u.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("uplink: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("uplink: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("uplink: unexpected status %s", resp.Status)
	}
	return nil
}
