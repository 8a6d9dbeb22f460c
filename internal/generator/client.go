package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/puzzle"
	"github.com/muurk/wordfinder/internal/version"
)

const (
	// DefaultEndpoint is the generation service URL the client talks to
	// unless configured otherwise.
	DefaultEndpoint = "http://localhost:8080/wordfinder"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	// maxBodySize bounds how much of a response is read
	maxBodySize = 4 << 20

	// maxErrorBody bounds how much of an error response is kept
	maxErrorBody = 512
)

// Client sends generation requests to a word finder service
type Client struct {
	// Endpoint is the full URL requests are POSTed to
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client for endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  version.UserAgent(),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Generate sends req and decodes the puzzle in the response. It performs
// exactly one HTTP exchange; callers decide whether to retry.
func (c *Client) Generate(ctx context.Context, req puzzle.GenerationRequest) (*puzzle.Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	logging.LogBody("Generation request body", payload)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, NewNetworkError("failed to create POST request", err, c.Endpoint)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError("POST request failed", err, c.Endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, NewHTTPError(resp.StatusCode, strings.TrimSpace(string(body)), c.Endpoint)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err, c.Endpoint)
	}
	logging.LogBody("Generation response body", body)

	result, err := puzzle.DecodeResponse(body)
	if err != nil {
		return nil, parseFailure(err, c.Endpoint)
	}

	return result, nil
}

// Ping checks that something answers HTTP at the endpoint. Any response,
// including 404 or 405 for a GET, counts as reachable; only transport
// failures are returned.
func (c *Client) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return 0, NewNetworkError("failed to create ping request", err, c.Endpoint)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, NewNetworkError("generation service unreachable", err, c.Endpoint)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return resp.StatusCode, nil
}
