// Package apiclient provides a REST client for the identity platform
// administration API used by idmctl.
package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marmos91/idmctl/internal/logger"
)

const (
	// DefaultCookieName is the session cookie the platform expects.
	DefaultCookieName = "iPlanetDirectoryPro"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client.
	DefaultUserAgent = "idmctl"
)

// Client is the identity platform API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	cookieName string
	userAgent  string
	curl       func(string)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithInsecure disables TLS certificate verification.
func WithInsecure(insecure bool) Option {
	return func(c *Client) {
		if !insecure {
			return
		}
		c.httpClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // explicitly requested with --insecure
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithCurl registers a callback that receives every request rendered as a
// curl command line.
func WithCurl(fn func(string)) Option {
	return func(c *Client) { c.curl = fn }
}

// New creates a new API client for the tenant at baseURL (for example
// https://tenant.example.com/am).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		cookieName: DefaultCookieName,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a new client with the given session token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// SetToken sets the session token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// BaseURL returns the tenant base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// idmBaseURL derives the identity-management base URL from the access
// management one by dropping a trailing /am.
func (c *Client) idmBaseURL() string {
	return strings.TrimSuffix(c.baseURL, "/am")
}

// request describes one API call.
type request struct {
	method     string
	url        string
	apiVersion string
	headers    map[string]string
	body       any
	result     any
}

// do performs an HTTP request and decodes the response.
func (c *Client) do(ctx context.Context, r request) error {
	var payload []byte
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if r.apiVersion != "" {
		req.Header.Set("Accept-API-Version", r.apiVersion)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.token})
		if strings.Contains(r.url, "/openidm/") {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	}

	if c.curl != nil {
		c.curl(curlCommand(req, payload, c.cookieName))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DebugCtx(ctx, "api request failed", logger.Method(r.method), logger.URL(r.url), logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugCtx(ctx, "api request",
		logger.Method(r.method),
		logger.URL(r.url),
		logger.Status(resp.StatusCode),
		logger.DurationMs(logger.Duration(start)),
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if r.result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, r.result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// get performs a GET request against the access management API.
func (c *Client) get(ctx context.Context, path, apiVersion string, result any) error {
	return c.do(ctx, request{method: http.MethodGet, url: c.baseURL + path, apiVersion: apiVersion, result: result})
}

// post performs a POST request against the access management API.
func (c *Client) post(ctx context.Context, path, apiVersion string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPost, url: c.baseURL + path, apiVersion: apiVersion, body: body, result: result})
}

// put performs a PUT request against the access management API.
func (c *Client) put(ctx context.Context, path, apiVersion string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPut, url: c.baseURL + path, apiVersion: apiVersion, body: body, result: result})
}

// delete performs a DELETE request against the access management API.
func (c *Client) delete(ctx context.Context, path, apiVersion string, result any) error {
	return c.do(ctx, request{method: http.MethodDelete, url: c.baseURL + path, apiVersion: apiVersion, result: result})
}
