// Package api implements the HTTP client for the campus restaurant API.
//
// All requests funnel through Client.request, which attaches the bearer
// token when one is available, normalizes transport and server failures
// into the NetworkError/RequestError taxonomy, and surfaces every failure
// to the user through the injected Notifier exactly once before returning
// it to the caller. Callers that want a silent failure must suppress the
// returned error themselves; the notification has already happened.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notifier receives user-facing notifications. The TUI shows them as a
// blocking modal; the plain CLI prints them to stderr.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

func (f NotifierFunc) Notify(severity Severity, message string) { f(severity, message) }

// TokenSource yields the current bearer token, or "" when unauthenticated.
// The session manager implements this by checking its in-memory session
// first and the persisted store second.
type TokenSource interface {
	Token() string
}

// Client talks to the restaurant API.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	notifier Notifier
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient creates an API client rooted at baseURL. tokens and notifier
// may be nil for anonymous, silent use.
func NewClient(baseURL string, tokens TokenSource, notifier Notifier, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		tokens:   tokens,
		notifier: notifier,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestOptions carries per-request header tweaks.
type requestOptions struct {
	contentType string
	noJSON      bool
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// withContentType sets an explicit Content-Type header. Used by the
// multipart upload path, where the transport-chosen boundary must survive.
func withContentType(ct string) RequestOption {
	return func(o *requestOptions) {
		o.contentType = ct
		o.noJSON = true
	}
}

// request performs one API call and decodes the response body as JSON
// regardless of status code. Non-2xx responses become *RequestError with
// the server message; transport failures become *NetworkError. Either way
// the notifier fires exactly once before the error is returned.
func (c *Client) request(ctx context.Context, method, path string, body io.Reader, opts ...RequestOption) (json.RawMessage, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	switch {
	case o.contentType != "":
		req.Header.Set("Content-Type", o.contentType)
	case !o.noJSON && body != nil:
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		nerr := &NetworkError{Err: err}
		c.logger.Warn("transport failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		c.notify(SeverityError, nerr.UserMessage())
		return nil, nerr
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &RequestError{Status: resp.StatusCode, Message: serverMessage(raw, resp.StatusCode)}
		c.notify(SeverityError, rerr.Message)
		return nil, rerr
	}
	if readErr != nil {
		c.notify(SeverityError, "Failed to read server response")
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}
	if !json.Valid(raw) {
		c.notify(SeverityError, "Server sent an unreadable response")
		return nil, fmt.Errorf("response is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

// serverMessage extracts the server's message field from an error body,
// falling back to a generic "HTTP <status>" line.
func serverMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}

func (c *Client) notify(severity Severity, message string) {
	if c.notifier != nil {
		c.notifier.Notify(severity, message)
	}
}

// getJSON performs a GET and unmarshals the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// sendJSON marshals payload, performs the request, and unmarshals the
// response into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", path, err)
	}
	raw, err := c.request(ctx, method, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
