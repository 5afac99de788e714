// Package api implements the HTTP client for the marketplace backend. It is
// the single network boundary of the application: every request attaches the
// current session token as a bearer credential when one exists, and every
// non-2xx response surfaces as a structured *Error carrying the backend's
// message and status. The client never mutates the session and never retries;
// callers decide how to react to a failure.
package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/craftlink/craftlink/internal/core/ports"
)

// maxResponseSize caps response bodies to keep a misbehaving backend from
// exhausting memory.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token; empty means anonymous.
type TokenSource func() string

// Client talks to the marketplace backend. It implements ports.Backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	logger     zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a backend client. baseURL points at the API root
// (for example http://localhost:5000/api); token supplies the session's
// bearer credential and may return "" for anonymous calls.
func NewClient(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		token:      token,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Origin returns the server origin with any trailing /api path stripped,
// used to resolve server-relative profile-picture paths.
func (c *Client) Origin() string {
	return strings.TrimSuffix(c.baseURL, "/api")
}

// do issues one JSON request and decodes the response into out (ignored when
// out is nil). query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send finishes a prepared request: common headers, transport, status
// handling, decoding. Shared by do and the multipart upload.
func (c *Client) send(req *http.Request, out any) error {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Msg("request failed")
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", requestID).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// messageResponse is the backend's generic acknowledgement envelope.
type messageResponse struct {
	Message string `json:"message"`
}
