// Package validation implements the form-field checks run when a GitHub
// endpoint is configured: a live probe of the candidate API URL and an
// advisory check of the display name.
package validation

import (
	"context"
	"strings"

	"github.com/hubscan/hubscan/internal/github"
	"github.com/hubscan/hubscan/pkg/errors"
	"github.com/hubscan/hubscan/pkg/logging"
)

// Kind classifies a validation result for rendering.
type Kind int

const (
	// OK means the field value was verified.
	OK Kind = iota
	// Info is a neutral informational message.
	Info
	// Warning is advisory: the value is accepted but may need attention.
	Warning
	// Error means the value was rejected.
	Error
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Result is the outcome of validating a single form field.
type Result struct {
	Kind    Kind
	Message string
}

// The user-facing messages below are a compatibility surface: downstream
// tooling matches on them, so change them only deliberately.
const (
	msgEmptyAPIURL    = "You must specify the API URL"
	msgVerified       = "GitHub Enterprise server verified"
	msgMalformedURL   = "The endpoint does not look like a GitHub Enterprise (malformed URL)"
	msgInvalidJSON    = "The endpoint does not look like a GitHub Enterprise (invalid JSON response)"
	msgNotFound       = "The endpoint does not look like a GitHub Enterprise (page not found)"
	msgNetworkError   = "The endpoint does not look like a GitHub Enterprise (verify network and/or try again later)"
	msgPrivateMode    = "Private mode enabled, validation disabled"
	msgNameSuggested  = "A name is recommended to help differentiate similar endpoints"
	privateModeMarker = "private mode enabled"
)

// CheckAPIURI validates the API URL field of an endpoint form by probing the
// candidate server anonymously. It blocks for at most one outbound request
// and always returns a classified Result; probe failures are never
// propagated as errors.
func CheckAPIURI(ctx context.Context, apiURI string) Result {
	log := logging.FromContext(ctx)

	apiURI = strings.TrimSpace(apiURI)
	if apiURI == "" {
		return Result{Kind: Warning, Message: msgEmptyAPIURL}
	}

	client, err := github.ConnectAnonymously(apiURI)
	if err != nil {
		// For example: https:/api.github.com
		log.Warn().Err(err).Str("api_uri", apiURI).Msg("Trying to configure a GitHub Enterprise server")
		return Result{Kind: Error, Message: msgMalformedURL}
	}

	err = client.CheckAPIURLValidity(ctx)
	switch {
	case err == nil:
		// For example: https://api.github.com/ or
		// https://github.mycompany.com/api/v3/ (with private mode disabled).
		log.Debug().Str("api_uri", apiURI).Msg("Trying to configure a GitHub Enterprise server")
		return Result{Kind: OK, Message: msgVerified}

	case errors.IsMalformedURL(err):
		log.Warn().Err(err).Str("api_uri", apiURI).Msg("Trying to configure a GitHub Enterprise server")
		return Result{Kind: Error, Message: msgMalformedURL}

	case errors.IsInvalidJSON(err):
		log.Warn().Err(err).Str("api_uri", apiURI).Msg("Trying to configure a GitHub Enterprise server")
		return Result{Kind: Error, Message: msgInvalidJSON}

	case errors.IsNotFound(err):
		// For example: https://github.mycompany.com/server/api/v3/
		log.Warn().Str("api_uri", apiURI).Msg("Getting HTTP Error 404")
		return Result{Kind: Error, Message: msgNotFound}

	case errors.IsPrivateMode(err) || strings.Contains(err.Error(), privateModeMarker):
		// Soft pass: the endpoint may be valid but cannot be probed further.
		log.Debug().Str("api_uri", apiURI).Msg(err.Error())
		return Result{Kind: Warning, Message: msgPrivateMode}

	default:
		log.Warn().Err(err).Str("api_uri", apiURI).Msg("API probe failed")
		return Result{Kind: Error, Message: msgNetworkError}
	}
}

// CheckName validates the display name field. A blank name is accepted with
// an advisory warning; any non-blank value passes. No other constraints are
// enforced.
func CheckName(name string) Result {
	if strings.TrimSpace(name) == "" {
		return Result{Kind: Warning, Message: msgNameSuggested}
	}
	return Result{Kind: OK}
}
