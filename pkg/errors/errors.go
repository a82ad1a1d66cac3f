// Package errors provides custom error types for the hubscan system.
// These errors enable programmatic classification of endpoint probe and
// validation failures throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library helpers so callers of this
// package don't need a second errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the hubscan system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedURL indicates that a candidate API URL could not be parsed
	ErrMalformedURL = errors.New("malformed URL")

	// ErrInvalidJSON indicates that a response body was not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON response")

	// ErrPrivateMode indicates that anonymous API access is blocked by the server
	ErrPrivateMode = errors.New("private mode enabled")

	// ErrEndpointUnreachable indicates that an endpoint could not be probed
	ErrEndpointUnreachable = errors.New("endpoint unreachable")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ProbeError represents a failure while probing a candidate enterprise API root.
// Sentinel identity is carried in Err so callers classify with errors.Is; the
// rendered message keeps the raw server wording because some callers still
// match on it (see the private mode contract in pkg/validation).
type ProbeError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("probe of %s failed (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("probe of %s failed: %s", e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// NewProbeError creates a new ProbeError wrapping the given sentinel or cause.
func NewProbeError(url string, statusCode int, message string, err error) *ProbeError {
	return &ProbeError{
		URL:        url,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMalformedURL checks if an error indicates an unparseable URL
func IsMalformedURL(err error) bool {
	return errors.Is(err, ErrMalformedURL)
}

// IsInvalidJSON checks if an error indicates a non-JSON response body
func IsInvalidJSON(err error) bool {
	return errors.Is(err, ErrInvalidJSON)
}

// IsPrivateMode checks if an error indicates blocked anonymous access
func IsPrivateMode(err error) bool {
	return errors.Is(err, ErrPrivateMode)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapProbe wraps an error as a ProbeError
func WrapProbe(url string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &ProbeError{
		URL:        url,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
