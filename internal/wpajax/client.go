// Package wpajax is a thin client for the storefront's WordPress
// admin-ajax endpoints: mirroring cart additions server-side and fetching
// pre-order countdown configuration.
//
// The showroom never blocks on these calls. Cart mirroring is
// fire-and-forget; the server cart is eventually consistent at best and
// local persistence remains the source of truth.
package wpajax

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Actions understood by the theme's admin-ajax handler.
const (
	actionAddToCart         = "skyyrose_add_to_cart"
	actionPreorderCountdown = "skyyrose_get_preorder_countdown"
)

// CountdownConfig is the server's countdown payload for a pre-order
// product. ServerTimeUnix lets the client correct for local clock skew.
type CountdownConfig struct {
	LaunchDateISO  string `json:"launch_date_iso"`
	LaunchDateUnix int64  `json:"launch_date_unix"`
	ServerTimeUnix int64  `json:"server_time_unix"`
	Status         string `json:"status"` // blooming_soon, now_blooming, available
	RemainingMS    int64  `json:"remaining_ms"`
}

// Pre-order statuses reported by the server.
const (
	StatusBloomingSoon = "blooming_soon"
	StatusNowBlooming  = "now_blooming"
	StatusAvailable    = "available"
)

// Client talks to one WordPress site's admin-ajax endpoint.
// A Client with an empty endpoint is in offline mode: every call returns
// ErrOffline without touching the network.
type Client struct {
	endpoint string
	nonce    string
	http     *http.Client
}

// ErrOffline is returned by all calls on a client with no configured site.
var ErrOffline = fmt.Errorf("wpajax: no site configured, offline mode")

// NewClient creates a client for the given admin-ajax URL and nonce.
// endpoint may be empty for offline mode. timeout bounds every request.
func NewClient(endpoint, nonce string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		nonce:    nonce,
		http:     &http.Client{Timeout: timeout},
	}
}

// Offline reports whether the client has no endpoint configured.
func (c *Client) Offline() bool {
	return c.endpoint == ""
}

// AddToCart mirrors a cart addition to the server-side WooCommerce cart.
// Only success or failure matters to callers; the response body is ignored
// beyond the HTTP status.
func (c *Client) AddToCart(ctx context.Context, productID int) error {
	if c.Offline() {
		return ErrOffline
	}

	form := url.Values{}
	form.Set("action", actionAddToCart)
	form.Set("product_id", strconv.Itoa(productID))
	form.Set("nonce", c.nonce)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build add-to-cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("add-to-cart request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("add-to-cart returned status %d", resp.StatusCode)
	}
	return nil
}

// PreorderCountdown fetches the countdown configuration for a product.
func (c *Client) PreorderCountdown(ctx context.Context, productID int) (*CountdownConfig, error) {
	if c.Offline() {
		return nil, ErrOffline
	}

	form := url.Values{}
	form.Set("action", actionPreorderCountdown)
	form.Set("product_id", strconv.Itoa(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build countdown request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("countdown request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countdown returned status %d", resp.StatusCode)
	}

	var cfg CountdownConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode countdown response: %w", err)
	}
	if cfg.Status == "" {
		return nil, fmt.Errorf("countdown response missing status")
	}
	return &cfg, nil
}
