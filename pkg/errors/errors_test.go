// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and user-facing messages

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "junk_arguments",
			code:    errors.ErrJunkArguments,
			message: "Junk at end of arguments.",
			wantStr: "[JUNK_ARGUMENTS] Junk at end of arguments.",
		},
		{
			name:    "not_found",
			code:    errors.ErrNotFound,
			message: "No breakpoint number 4.",
			wantStr: "[NOT_FOUND] No breakpoint number 4.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNotFound, "Function \"%s\" not defined.", "__cxa_throw")
	assert.Equal(t, `Function "__cxa_throw" not defined.`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrTargetLoad, "cannot load program")

		assert.Equal(t, errors.ErrTargetLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[TARGET_LOAD] cannot load program: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("number", 3).
		WithDetail("command", "delete")

	assert.Equal(t, 3, err.Details["number"])
	assert.Equal(t, "delete", err.Details["command"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownEvent, "unknown"),
			code:     errors.ErrUnknownEvent,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrJunkArguments, errors.GetErrorCode(errors.New(errors.ErrJunkArguments, "junk")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestUserMessage(t *testing.T) {
	t.Run("coded_error_drops_code", func(t *testing.T) {
		err := errors.New(errors.ErrJunkArguments, "Junk at end of arguments.")
		assert.Equal(t, "Junk at end of arguments.", errors.UserMessage(err))
	})

	t.Run("wrapped_chain", func(t *testing.T) {
		root := stderrors.New("permission denied")
		err := errors.Wrap(errors.Wrap(root, errors.ErrFileAccess, "open bps.ddbg"), errors.ErrInternal, "save failed")
		assert.Equal(t, "save failed: open bps.ddbg: permission denied", errors.UserMessage(err))
	})

	t.Run("plain_error", func(t *testing.T) {
		assert.Equal(t, "boom", errors.UserMessage(stderrors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		require.Empty(t, errors.UserMessage(nil))
	})
}
