// Package wealthsimple provides a client for the unofficial
// Wealthsimple Trade API.
//
// A Client wraps one authenticated HTTP session against the trade
// service. Construction logs in immediately; every other method issues
// a single request against a fixed endpoint and returns the parsed
// response. The client performs no retries, no caching and no token
// refresh scheduling.
package wealthsimple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://trade-service.wealthsimple.com"
	defaultTimeout = 30 * time.Second
)

// Client is an authenticated Wealthsimple Trade API client.
//
// The underlying *http.Client is safe for concurrent use, and the
// stored access token is guarded by a mutex, so a single Client may be
// shared between goroutines. The token is written once at login and is
// never updated automatically afterwards; see RefreshToken.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client before login.
type Option func(*Client)

// WithBaseURL overrides the trade service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP
// client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client and logs in with the given credentials.
//
// otpSecret is the base32 authenticator secret used to generate the
// two-factor one-time password. New fails with ErrAuthentication if
// any credential is empty (before any network call) or if the service
// rejects the credentials.
func New(email, password, otpSecret string, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Login(email, password, otpSecret); err != nil {
		return nil, err
	}

	return c, nil
}

// Token returns the access token currently attached to the session.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the access token sent on subsequent requests.
// Callers that refresh their token are responsible for storing the new
// value here.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// do executes one request against the trade service and returns the
// raw response body. Non-2xx responses are returned as *APIError
// carrying the status code and whatever body the service sent.
func (c *Client) do(method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("request complete",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return data, nil
}

// decodeObject parses a raw JSON object response. Empty bodies decode
// to nil.
func decodeObject(data []byte, what string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", what, err)
	}
	return out, nil
}
