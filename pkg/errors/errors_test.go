package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/hubscan/hubscan/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "api_uri",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field api_uri: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("name", "", "blank value")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "blank value")
	})
}

func TestProbeError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.ProbeError{
			URL:        "https://github.example.com/api/v3",
			StatusCode: 404,
			Message:    "page not found",
			Err:        pkgerrors.ErrNotFound,
		}
		assert.Contains(t, err.Error(), "github.example.com")
		assert.Contains(t, err.Error(), "404")
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("without status code", func(t *testing.T) {
		err := pkgerrors.NewProbeError("https://github.example.com/api/v3", 0,
			"connection refused", pkgerrors.ErrEndpointUnreachable)
		assert.Equal(t, "probe of https://github.example.com/api/v3 failed: connection refused", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrEndpointUnreachable))
	})

	t.Run("sentinel classification", func(t *testing.T) {
		tests := []struct {
			name     string
			sentinel error
			check    func(error) bool
		}{
			{"malformed URL", pkgerrors.ErrMalformedURL, pkgerrors.IsMalformedURL},
			{"invalid JSON", pkgerrors.ErrInvalidJSON, pkgerrors.IsInvalidJSON},
			{"private mode", pkgerrors.ErrPrivateMode, pkgerrors.IsPrivateMode},
			{"not found", pkgerrors.ErrNotFound, pkgerrors.IsNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := pkgerrors.WrapProbe("https://example.com", 0, tt.sentinel)
				assert.True(t, tt.check(err))
			})
		}
	})

	t.Run("private mode message survives wrapping", func(t *testing.T) {
		// pkg/validation falls back to substring matching on this text.
		err := pkgerrors.WrapProbe("https://github.example.com/api/v3", 403, pkgerrors.ErrPrivateMode)
		assert.Contains(t, err.Error(), "private mode enabled")
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("endpoints", "file unreadable", errors.New("permission denied"))
		assert.Equal(t, "configuration error in endpoints: file unreadable", err.Error())
		assert.ErrorContains(t, errors.Unwrap(err), "permission denied")
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "no config file"}
		assert.Equal(t, "configuration error: no config file", err.Error())
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("disk full")
	err := pkgerrors.NewIOError("write", "/tmp/endpoints.yaml", base)
	assert.Equal(t, "IO error during write of /tmp/endpoints.yaml: disk full", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
		assert.Nil(t, pkgerrors.WrapIO("read", "path", nil))
		assert.Nil(t, pkgerrors.WrapProbe("url", 0, nil))
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("api_uri", errors.New("bad scheme"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
