package atlassian

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

	"log/slog"

	"github.com/ylchen07/jira-api/internal/auth"
	"github.com/ylchen07/jira-api/internal/config"
)

// defaultTimeout applies uniformly to every call; there is no per-operation
// override and no retry on timeout. A timed-out call surfaces as a
// transport failure and the caller decides whether to retry.
const defaultTimeout = 30 * time.Second

// Client performs authenticated calls against the Atlassian REST API and
// classifies every outcome into the error taxonomy.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a Client for the specified base URL and credentials.
// The base URL must carry an explicit http:// or https:// scheme.
func NewClient(base string, creds config.ServiceCredentials, logger *slog.Logger) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, InvalidInput("base URL is required")
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return nil, InvalidInput("base URL must start with http:// or https://")
	}

	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.APIToken) == "" {
		return nil, InvalidInput("email and api_token are required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, InvalidInput("parse base URL: %v", err)
	}

	httpClient := &http.Client{
		Timeout:   defaultTimeout,
		Transport: auth.NewTransport(nil, creds),
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    parsed,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewRequest builds an HTTP request with optional query parameters and JSON body.
func (c *Client) NewRequest(ctx context.Context, method, path string, query map[string]string, body any) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("atlassian: encode body: %w", err)
		}
		bodyReader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do executes the request and decodes the response JSON into out if provided.
// A 204 or empty body is an empty success: out is left untouched.
func (c *Client) Do(req *http.Request, out any) error {
	c.logger.Debug("atlassian request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return TransportError(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return classify(res.StatusCode, data)
	}

	if res.StatusCode == http.StatusNoContent || len(data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return DecodeError(fmt.Errorf("parse response JSON: %w", err), data)
	}

	return nil
}

// Get is a helper for GET requests.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.Do(req, out)
}

// Post is a helper for POST requests.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req, err := c.NewRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return c.Do(req, out)
}

// Put is a helper for PUT requests.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	req, err := c.NewRequest(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return c.Do(req, out)
}

// Delete is a helper for DELETE requests.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := c.NewRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.Do(req, nil)
}

// SetTransport overrides the underlying HTTP transport. Useful for testing.
func (c *Client) SetTransport(rt http.RoundTripper) {
	if rt == nil {
		return
	}
	c.httpClient.Transport = rt
}
