package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/zemuria/ops-console/internal/domain/errors"
	"github.com/zemuria/ops-console/internal/infrastructure/session"
)

// DefaultTimeout for HTTP requests against the analytics backend
const DefaultTimeout = 30 * time.Second

// Config represents upstream backend configuration
type Config struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

// Client is the single choke point for every request leaving the console.
// It attaches the session token, normalizes paths for the backend's
// strict-trailing-slash routing, and handles session expiry globally.
// Failed requests are never retried automatically; recovery is always
// operator-initiated.
type Client struct {
	config     Config
	httpClient *http.Client
	sessions   *session.Store
	redirector *session.Redirector
	logger     *zap.Logger
}

// NewClient creates a new backend client
func NewClient(config Config, sessions *session.Store, redirector *session.Redirector, logger *zap.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: Config{
			BaseURL: strings.TrimRight(config.BaseURL, "/"),
			Timeout: config.Timeout,
		},
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		sessions:   sessions,
		redirector: redirector,
		logger:     logger,
	}
}

// NormalizePath coerces a request path to end with a trailing slash, the
// form the backend's router requires. When the path carries an inline query
// string the slash goes immediately before the '?'. Without this the
// backend answers 404, silently. Normalizing an already-normalized path is
// a no-op.
func NormalizePath(p string) string {
	if i := strings.Index(p, "?"); i >= 0 {
		path, query := p[:i], p[i:]
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		return path + query
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// get performs an authenticated GET and decodes the JSON response
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs an authenticated POST with a JSON body
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	fullURL := c.config.BaseURL + "/" + strings.TrimLeft(NormalizePath(path), "/")
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Every outbound request carries the session token when one is held.
	// Login is simply the one call made while none is.
	if token, ok := c.sessions.Token(); ok {
		httpReq.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &domainErrors.UpstreamError{Err: fmt.Errorf("%w: %v", domainErrors.ErrUpstreamUnavailable, err)}
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return &domainErrors.UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Global session-expiry handling: drop the token and queue the
		// redirect, then still surface the failure so the caller's own
		// error handling fires too. The store's clear is a compare-and-swap,
		// so concurrent 401s from one batch trigger the redirect once.
		if c.sessions.Clear() {
			c.redirector.Trigger()
			c.logger.Warn("session rejected by backend, operator must log in again",
				zap.String("path", path),
			)
		}
		return &domainErrors.UpstreamError{Status: resp.StatusCode, Body: respBody, Err: domainErrors.ErrSessionExpired}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domainErrors.UpstreamError{Status: resp.StatusCode, Body: respBody}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &domainErrors.UpstreamError{
				Status: resp.StatusCode,
				Body:   respBody,
				Err:    fmt.Errorf("%w: %v", domainErrors.ErrMalformedPayload, err),
			}
		}
	}

	return nil
}

// Login authenticates against the backend and stores the issued token.
// It is the only operation that succeeds without a held session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	if err := c.post(ctx, "auth/login", &loginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return &domainErrors.UpstreamError{Err: fmt.Errorf("%w: login response carried no token", domainErrors.ErrMalformedPayload)}
	}
	return c.sessions.Set(resp.Token)
}

// ServerMessage extracts the operator-facing message from an upstream
// error: the backend's error field, its non_field_errors, or the raw
// status line as a last resort.
func ServerMessage(err error) string {
	upstream, ok := err.(*domainErrors.UpstreamError)
	if !ok {
		if unwrapped, ok := findUpstream(err); ok {
			upstream = unwrapped
		} else {
			return err.Error()
		}
	}

	var payload struct {
		Error          string   `json:"error"`
		Message        string   `json:"message"`
		NonFieldErrors []string `json:"non_field_errors"`
	}
	if len(upstream.Body) > 0 && json.Unmarshal(upstream.Body, &payload) == nil {
		switch {
		case payload.Error != "":
			return payload.Error
		case len(payload.NonFieldErrors) > 0:
			return payload.NonFieldErrors[0]
		case payload.Message != "":
			return payload.Message
		}
	}
	return upstream.Error()
}

func findUpstream(err error) (*domainErrors.UpstreamError, bool) {
	for err != nil {
		if upstream, ok := err.(*domainErrors.UpstreamError); ok {
			return upstream, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
