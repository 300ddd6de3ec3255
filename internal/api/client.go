// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/sirupsen/logrus"
)

// Error is a normalized API failure. Every failed call, whether the server
// answered with a non-2xx status or the transport produced no response at
// all, surfaces as *Error so callers can extract a human-readable message
// uniformly.
type Error struct {
	StatusCode int // 0 when no response was received
	Message    string
}

// Error returns the human-readable message
func (e *Error) Error() string {
	return e.Message
}

// errorBody is the JSON error shape the storefront API returns
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client issues requests against the remote storefront API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates an API client from configuration
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.API.RequestTimeout,
		},
		logger: logger,
	}
}

// Get issues a GET request. A non-empty token is sent as a bearer token.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

// Post issues a POST request with a JSON body. A non-empty token is sent as
// a bearer token.
func (c *Client) Post(ctx context.Context, path string, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, token, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     method,
			"path":       path,
			"error":      err.Error(),
		}).Warn("API request failed")
		// Transport-level failure: no response at all. Wrapped the same way
		// as an HTTP error so hooks handle both identically.
		return &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"latency":     time.Since(start),
	}).Debug("API request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// errorFromResponse extracts a message from a non-2xx response body, falling
// back to a generic status-based message when the body is not parseable.
func (c *Client) errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	} else if body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
