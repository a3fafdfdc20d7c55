// Package folio provides a client for the portfolio server API
package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
)

const (
	DefaultBaseURL   = "http://localhost:5001"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the FolioClient interface. All portfolio-scoped
// paths use the portfolio id the client was constructed with.
type Client struct {
	baseURL     string
	portfolioID string
	httpClient  *http.Client
	logger      *common.Logger
	limiter     *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new portfolio server client
func NewClient(portfolioID string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		portfolioID: portfolioID,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("folio API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// MutationError is a success:false response from a mutation endpoint.
// The request reached the server; the operation was rejected.
type MutationError struct {
	Endpoint string
	Reason   string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Endpoint, e.Reason)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", path).Msg("folio API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// postJSON performs a rate-limited POST with a JSON body. A nil body
// sends an empty POST. A nil result discards the response body after
// the status check.
func (c *Client) postJSON(ctx context.Context, path string, body, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", path).Msg("folio API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
			Endpoint:   path,
		}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// mutationResponse is the envelope every mutation endpoint returns.
type mutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// postMutation posts a mutation and converts success:false into a
// MutationError so callers can tell rejection apart from transport
// failure.
func (c *Client) postMutation(ctx context.Context, path string, body interface{}) error {
	var resp mutationResponse
	if err := c.postJSON(ctx, path, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		reason := resp.Error
		if reason == "" {
			reason = "unknown error"
		}
		return &MutationError{Endpoint: path, Reason: reason}
	}
	return nil
}

// portfolioPath builds a /portfolios/{id}-scoped path.
func (c *Client) portfolioPath(format string, args ...interface{}) string {
	return fmt.Sprintf("/portfolios/%s", url.PathEscape(c.portfolioID)) + fmt.Sprintf(format, args...)
}

// apiPath builds an /api/portfolios/{id}-scoped path.
func (c *Client) apiPath(format string, args ...interface{}) string {
	return fmt.Sprintf("/api/portfolios/%s", url.PathEscape(c.portfolioID)) + fmt.Sprintf(format, args...)
}

// Ensure Client implements FolioClient
var _ interfaces.FolioClient = (*Client)(nil)
