// Package api is the authenticated REST client for the offers backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() string
}

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the offers backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	host    string
	http    HTTPDoer
	timeout time.Duration
	tokens  TokenSource
	logger  *logging.Logger
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the request logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the API at baseURL (scheme and host, no /api).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, apperrors.ConfigValidationError("api.base_url", "base url is required", nil)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, apperrors.ConfigValidationError("api.base_url", fmt.Sprintf("invalid base url %q", baseURL), nil)
	}

	c := &Client{
		baseURL: baseURL,
		host:    u.Host,
		http:    &http.Client{},
		timeout: DefaultTimeout,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Global()
	}
	return c, nil
}

// SetTokenSource attaches the token source after construction. The session
// needs the client to log in, and the client needs the session for tokens.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// BaseURL returns the API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type serverError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, target any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}

	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.logger.WithContext(logging.WithRequestID(ctx, requestID))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("api request failed", "method", method, "path", path, "error", err)
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return apperrors.RequestTimeout(path, c.timeout).WithCause(err)
		case errors.Is(ctx.Err(), context.Canceled):
			return apperrors.RequestCancelled(path).WithCause(err)
		default:
			return apperrors.NetworkUnavailable(c.host, err)
		}
	}
	defer resp.Body.Close()

	log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var se serverError
		_ = json.Unmarshal(raw, &se)
		return apperrors.APIStatus(path, resp.StatusCode, se.Message).WithDetails("request_id", requestID)
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return apperrors.DecodeFailed(path, err)
	}
	return nil
}
