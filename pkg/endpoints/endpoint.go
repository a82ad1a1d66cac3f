// Package endpoints defines the identity of GitHub API endpoints used to
// configure source-control scanning. An endpoint points at either the public
// GitHub API or the API root of a GitHub Enterprise server.
package endpoints

import (
	"fmt"
	"strings"
)

// Endpoint is an immutable, named pointer to a GitHub API root.
// Identity is defined solely by APIURI: two endpoints with the same URI and
// different names are the same endpoint.
type Endpoint struct {
	// APIURI is the canonical, normalized base API URL.
	APIURI string `json:"api_uri" yaml:"api_uri"`

	// Name is an optional display label. When absent at construction time it
	// is inferred from the hostname of the API URI and cached here.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// New constructs an Endpoint from raw user input. Both inputs are trimmed;
// the URI is normalized and, when no name is given, one is inferred from the
// hostname. Construction is a pure string transformation: no reachability
// check happens here (see pkg/validation for that).
func New(apiURI, name string) Endpoint {
	raw := strings.TrimSpace(apiURI)
	name = strings.TrimSpace(name)

	e := Endpoint{APIURI: NormalizeAPIURI(raw)}
	if name == "" {
		// The name is derived from the raw input, not the normalized URI.
		// Long-standing behavior; keep it so persisted names stay stable.
		e.Name = InferDisplayName(raw)
	} else {
		e.Name = name
	}
	return e
}

// Resolve re-normalizes an endpoint loaded from persisted configuration.
// Endpoints saved before the current normalization rules may carry a stale
// URI; those are replaced with a freshly constructed normalized copy. An
// already canonical endpoint is returned unchanged.
func (e Endpoint) Resolve() Endpoint {
	if e.APIURI == NormalizeAPIURI(e.APIURI) {
		return e
	}
	return New(e.APIURI, e.Name)
}

// Equal reports whether two endpoints identify the same API root.
// Names are ignored.
func (e Endpoint) Equal(other Endpoint) bool {
	return e.APIURI == other.APIURI
}

// Key returns the identity key of the endpoint, suitable for use as a map
// key. It is consistent with Equal.
func (e Endpoint) Key() string {
	return e.APIURI
}

func (e Endpoint) String() string {
	return fmt.Sprintf("Endpoint{apiUri=%q, name=%q}", e.APIURI, e.Name)
}
