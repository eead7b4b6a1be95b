package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

const errorBodyReadLimit int64 = 1024

var (
	errBaseURLRequired = errors.New("supabase base URL is required")
	errAPIKeyRequired  = errors.New("supabase api key is required")
)

// Client is a thin adapter over the Supabase REST proxy. Every call is a
// fresh outbound request; there is no caching and no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds the gateway from the Supabase configuration.
func NewClient(cfg config.SupabaseConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// List fetches the rows of table matching filters and decodes them into dest.
// A non-200 downstream status is returned as a dependency error carrying that
// status verbatim so the router can relay it.
func (c *Client) List(ctx context.Context, table string, filters *Filters, dest any) error {
	url := c.tableURL(table)
	if q := filters.Encode(); q != "" {
		url += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build list request")
	}
	c.setHeaders(req, false)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute list request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp, fmt.Sprintf("list %s", table))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode list response")
	}
	return nil
}

// Insert writes a single record; the downstream generates identity columns.
func (c *Client) Insert(ctx context.Context, table string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal insert payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build insert request")
	}
	c.setHeaders(req, true)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute insert request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError(resp, fmt.Sprintf("insert into %s", table))
	}
	return nil
}

// Patch applies a partial update to the rows matched by rawFilter, an
// already-encoded predicate string such as "id=eq.7".
func (c *Client) Patch(ctx context.Context, table, rawFilter string, partial any) error {
	payload, err := json.Marshal(partial)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal patch payload")
	}

	url := c.tableURL(table) + "?" + rawFilter
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build patch request")
	}
	c.setHeaders(req, true)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute patch request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.statusError(resp, fmt.Sprintf("patch %s", table))
	}
	return nil
}

// Delete removes the rows matched by rawFilter. A filter matching zero rows
// still returns success downstream, which makes scoped deletes idempotent.
func (c *Client) Delete(ctx context.Context, table, rawFilter string) error {
	url := c.tableURL(table) + "?" + rawFilter
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build delete request")
	}
	c.setHeaders(req, false)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute delete request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.statusError(resp, fmt.Sprintf("delete from %s", table))
	}
	return nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}
}

func (c *Client) statusError(resp *http.Response, op string) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, op+" failed").
		WithHTTPStatus(resp.StatusCode).
		WithDetails(map[string]any{"status": resp.StatusCode})
}
