package endpoints

import (
	"maps"
	"sort"
	"sync"

	"github.com/hubscan/hubscan/pkg/errors"
)

// Endpoints is a concurrent safe set of endpoints keyed by canonical API URI.
type Endpoints struct {
	mu        sync.RWMutex
	endpoints map[string]Endpoint
}

// Option defines a function that configures an Endpoints instance.
type Option func(*Endpoints)

// WithCapacity sets the initial capacity of the endpoints map.
func WithCapacity(capacity int) Option {
	return func(e *Endpoints) {
		e.endpoints = make(map[string]Endpoint, capacity)
	}
}

// WithEndpoints initializes the set with existing endpoints.
func WithEndpoints(endpoints ...Endpoint) Option {
	return func(e *Endpoints) {
		e.endpoints = make(map[string]Endpoint, len(endpoints))
		for _, endpoint := range endpoints {
			e.endpoints[endpoint.Key()] = endpoint
		}
	}
}

// NewEndpoints creates a new Endpoints set with optional configuration.
func NewEndpoints(opts ...Option) *Endpoints {
	e := &Endpoints{
		endpoints: make(map[string]Endpoint),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Get returns an endpoint by API URI and whether it exists. The URI is
// normalized before lookup so callers may pass raw input.
func (e *Endpoints) Get(apiURI string) (Endpoint, bool) {
	key := NormalizeAPIURI(apiURI)
	e.mu.RLock()
	endpoint, ok := e.endpoints[key]
	e.mu.RUnlock()
	return endpoint, ok
}

// Set adds or replaces an endpoint (upsert behavior).
func (e *Endpoints) Set(endpoint Endpoint) {
	e.mu.Lock()
	e.endpoints[endpoint.Key()] = endpoint
	e.mu.Unlock()
}

// Add adds an endpoint, returning an error if one with the same API URI
// already exists.
func (e *Endpoints) Add(endpoint Endpoint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.endpoints[endpoint.Key()]; exists {
		return errors.NewProbeError(endpoint.APIURI, 0, "endpoint already configured", errors.ErrAlreadyExists)
	}

	e.endpoints[endpoint.Key()] = endpoint
	return nil
}

// Delete removes an endpoint by API URI. Returns an error if the endpoint
// doesn't exist.
func (e *Endpoints) Delete(apiURI string) error {
	key := NormalizeAPIURI(apiURI)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.endpoints[key]; !exists {
		return errors.NewProbeError(apiURI, 0, "endpoint not configured", errors.ErrNotFound)
	}

	delete(e.endpoints, key)
	return nil
}

// Exists checks if an endpoint exists without returning it.
func (e *Endpoints) Exists(apiURI string) bool {
	key := NormalizeAPIURI(apiURI)
	e.mu.RLock()
	_, exists := e.endpoints[key]
	e.mu.RUnlock()
	return exists
}

// Len returns the number of endpoints.
func (e *Endpoints) Len() int {
	e.mu.RLock()
	length := len(e.endpoints)
	e.mu.RUnlock()
	return length
}

// List returns all endpoints sorted by API URI.
func (e *Endpoints) List() []Endpoint {
	e.mu.RLock()
	endpoints := make([]Endpoint, 0, len(e.endpoints))
	for _, endpoint := range e.endpoints {
		endpoints = append(endpoints, endpoint)
	}
	e.mu.RUnlock()

	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].APIURI < endpoints[j].APIURI
	})
	return endpoints
}

// Map returns a copy of all endpoints keyed by API URI.
func (e *Endpoints) Map() map[string]Endpoint {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make(map[string]Endpoint, len(e.endpoints))
	maps.Copy(result, e.endpoints)
	return result
}

// ForEach applies a function to each endpoint. If the function returns
// false, iteration stops early.
func (e *Endpoints) ForEach(fn func(endpoint Endpoint) bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, endpoint := range e.endpoints {
		if !fn(endpoint) {
			break
		}
	}
}

// Clear removes all endpoints.
func (e *Endpoints) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k := range e.endpoints {
		delete(e.endpoints, k)
	}
}

// Resolve runs the self-healing normalization pass over the set, replacing
// any endpoint whose stored URI predates the current normalization rules.
// It returns the number of endpoints that were migrated.
func (e *Endpoints) Resolve() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	type migration struct {
		oldKey   string
		resolved Endpoint
	}
	var migrations []migration
	for key, endpoint := range e.endpoints {
		if resolved := endpoint.Resolve(); resolved != endpoint {
			migrations = append(migrations, migration{oldKey: key, resolved: resolved})
		}
	}

	for _, m := range migrations {
		delete(e.endpoints, m.oldKey)
		e.endpoints[m.resolved.Key()] = m.resolved
	}
	return len(migrations)
}
