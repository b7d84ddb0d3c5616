// Package adminclient is a typed client for the storefront admin API and the
// forms the dashboard submits through it.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/order"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client calls the admin API with a session token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API at baseURL. An empty token sends anonymous requests.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) CreateStore(ctx context.Context, req store.StoreRequest) (*store.Store, error) {
	var st store.Store
	if err := c.do(ctx, http.MethodPost, "/api/stores", req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) GetStore(ctx context.Context, storeID string) (*store.Store, error) {
	var st store.Store
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+storeID, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) UpdateStore(ctx context.Context, storeID string, req store.StoreRequest) (*store.Store, error) {
	var st store.Store
	if err := c.do(ctx, http.MethodPatch, "/api/stores/"+storeID, req, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) DeleteStore(ctx context.Context, storeID string) error {
	return c.do(ctx, http.MethodDelete, "/api/stores/"+storeID, nil, nil)
}

// GetTheme returns the store's theme, or nil when it has none.
func (c *Client) GetTheme(ctx context.Context, storeID string) (*theme.ThemeColors, error) {
	var themes []*theme.ThemeColors
	if err := c.do(ctx, http.MethodGet, "/api/"+storeID+"/theme", nil, &themes); err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, nil
	}
	return themes[0], nil
}

func (c *Client) CreateTheme(ctx context.Context, storeID string, req theme.ColorsRequest) (*theme.ThemeColors, error) {
	var t theme.ThemeColors
	if err := c.do(ctx, http.MethodPost, "/api/"+storeID+"/theme", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTheme(ctx context.Context, storeID string, req theme.ColorsRequest) (*theme.ThemeColors, error) {
	var t theme.ThemeColors
	if err := c.do(ctx, http.MethodPatch, "/api/"+storeID+"/theme", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTheme(ctx context.Context, storeID string) error {
	return c.do(ctx, http.MethodDelete, "/api/"+storeID+"/theme", nil, nil)
}

func (c *Client) GetLanding(ctx context.Context, storeID string) (*landing.Landing, error) {
	var l landing.Landing
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+storeID+"/landing", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) UpdateLanding(ctx context.Context, storeID string, req landing.UpdateRequest) (*landing.Landing, error) {
	var l landing.Landing
	if err := c.do(ctx, http.MethodPatch, "/api/stores/"+storeID+"/landing", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) ListOrders(ctx context.Context, storeID string) ([]*order.Order, error) {
	var orders []*order.Order
	if err := c.do(ctx, http.MethodGet, "/api/stores/"+storeID+"/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) DeleteOrders(ctx context.Context, storeID string) (*order.DeleteResult, error) {
	var res order.DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/api/stores/"+storeID+"/orders", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
