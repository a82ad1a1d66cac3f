// Package github implements the anonymous probe used to verify that a
// candidate URI really is the API root of a GitHub or GitHub Enterprise
// server.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/hubscan/hubscan/internal/transport"
	"github.com/hubscan/hubscan/pkg/errors"
	"github.com/hubscan/hubscan/pkg/logging"
)

// maxProbeBody bounds how much of a response body the probe will read.
// API root payloads are small; anything larger is not a GitHub API.
const maxProbeBody = 1 << 20

// Client is an anonymous connection to a candidate GitHub API root.
type Client struct {
	apiURL    string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the transport client used for requests.
// Used by tests to inject custom timeouts.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// ConnectAnonymously returns a client for the given candidate API root.
// The candidate must parse as an absolute http(s) URL with a host; anything
// else is reported as a malformed URL before any network traffic happens.
func ConnectAnonymously(apiURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, errors.NewProbeError(apiURL, 0, err.Error(), errors.ErrMalformedURL)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.NewProbeError(apiURL, 0, "not an absolute http(s) URL", errors.ErrMalformedURL)
	}

	c := &Client{
		apiURL:    apiURL,
		transport: transport.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// APIURL returns the candidate API root this client probes.
func (c *Client) APIURL() string {
	return c.apiURL
}

// CheckAPIURLValidity performs a single anonymous GET against the API root
// and verifies the response looks like a GitHub API payload. It blocks until
// the response arrives or the transport's default timeout fires; there are
// no retries.
//
// Outcomes map onto the pkg/errors sentinels: ErrNotFound for a 404,
// ErrPrivateMode when anonymous introspection is blocked, ErrInvalidJSON for
// a body that is not a JSON object, and ErrEndpointUnreachable for anything
// at the network level.
func (c *Client) CheckAPIURLValidity(ctx context.Context) error {
	log := logging.FromContext(ctx)

	resp, err := c.transport.Get(ctx, c.apiURL)
	if err != nil {
		log.Warn().Err(err).Str("api_url", c.apiURL).Msg("API probe request failed")
		return errors.NewProbeError(c.apiURL, 0, err.Error(), errors.ErrEndpointUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		log.Warn().Err(err).Str("api_url", c.apiURL).Msg("Failed to read API probe response")
		return errors.NewProbeError(c.apiURL, resp.StatusCode, err.Error(), errors.ErrEndpointUnreachable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Warn().Str("api_url", c.apiURL).Msg("Getting HTTP Error 404 for API probe")
		return errors.NewProbeError(c.apiURL, resp.StatusCode, "page not found", errors.ErrNotFound)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// A GitHub Enterprise server with private mode enabled rejects
		// anonymous introspection of the API root.
		log.Debug().Str("api_url", c.apiURL).Int("status", resp.StatusCode).Msg("private mode enabled")
		return errors.NewProbeError(c.apiURL, resp.StatusCode, "private mode enabled", errors.ErrPrivateMode)

	case resp.StatusCode >= 400:
		log.Warn().Str("api_url", c.apiURL).Int("status", resp.StatusCode).Msg("API probe returned error status")
		return errors.NewProbeError(c.apiURL, resp.StatusCode, resp.Status, errors.ErrEndpointUnreachable)
	}

	// The API root of a GitHub server answers with a JSON object (the
	// hypermedia index). Anything else is some other web server.
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn().Err(err).Str("api_url", c.apiURL).Msg("API probe response is not a JSON object")
		return errors.NewProbeError(c.apiURL, resp.StatusCode, "invalid JSON response", errors.ErrInvalidJSON)
	}

	log.Debug().Str("api_url", c.apiURL).Msg("GitHub API root verified")
	return nil
}
