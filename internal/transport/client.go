// Package transport provides the HTTP client used to probe candidate
// GitHub Enterprise servers.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/hubscan/hubscan/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// Client provides HTTP client functionality for anonymous API probes.
type Client struct {
	http *http.Client
}

// New creates a new transport client. Probes connect anonymously, so no
// authenticator is attached.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client backed by the given
// http.Client. Used by tests to control timeouts and transports.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		return New()
	}
	return &Client{http: httpClient}
}

// Do performs an HTTP request with common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if req.Method == "POST" || req.Method == "PUT" || req.Method == "PATCH" {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.WrapProbe(url, 0, err)
	}
	return c.Do(req)
}
