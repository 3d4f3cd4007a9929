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
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"

	// Rendering and execution errors
	ErrShellUnsupported ErrorCode = "SHELL_UNSUPPORTED"
	ErrExecFailed       ErrorCode = "EXEC_FAILED"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// SimenvError represents a structured error with code and details
type SimenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SimenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SimenvError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SimenvError carrying the same code
func (e *SimenvError) Is(target error) bool {
	var targetErr *SimenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SimenvError with the given code and message
func New(code ErrorCode, message string) *SimenvError {
	return &SimenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SimenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SimenvError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &SimenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SimenvError) WithDetail(key string, value interface{}) *SimenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var se *SimenvError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var se *SimenvError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var se *SimenvError
	if errors.As(err, &se) {
		return se.Details
	}
	return nil
}
