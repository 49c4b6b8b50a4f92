package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Command argument errors
	ErrJunkArguments ErrorCode = "JUNK_ARGUMENTS"
	ErrUnknownEvent  ErrorCode = "UNKNOWN_EVENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Target and file errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrTargetLoad ErrorCode = "TARGET_LOAD"

	// Breakpoint condition errors
	ErrCondition ErrorCode = "CONDITION"
)

// DdbgError represents a structured error with code and details
type DdbgError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DdbgError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DdbgError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DdbgError) Is(target error) bool {
	var targetErr *DdbgError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DdbgError with the given code and message
func New(code ErrorCode, message string) *DdbgError {
	return &DdbgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DdbgError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DdbgError {
	return &DdbgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DdbgError
func Wrap(err error, code ErrorCode, message string) *DdbgError {
	if err == nil {
		return nil
	}
	return &DdbgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DdbgError {
	if err == nil {
		return nil
	}
	return &DdbgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DdbgError) WithDetail(key string, value interface{}) *DdbgError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ddbgErr *DdbgError
	if errors.As(err, &ddbgErr) {
		return ddbgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DdbgError
func GetErrorCode(err error) ErrorCode {
	var ddbgErr *DdbgError
	if errors.As(err, &ddbgErr) {
		return ddbgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DdbgError
func GetErrorDetails(err error) map[string]interface{} {
	var ddbgErr *DdbgError
	if errors.As(err, &ddbgErr) {
		return ddbgErr.Details
	}
	return nil
}

// UserMessage returns the text a user should see for err. Coded errors
// report their message without the code; wrapped causes are appended.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ddbgErr *DdbgError
	if !errors.As(err, &ddbgErr) {
		return err.Error()
	}
	if ddbgErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", ddbgErr.Message, UserMessage(ddbgErr.Wrapped))
	}
	return ddbgErr.Message
}
