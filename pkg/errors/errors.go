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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// FileSystem errors
	ErrFileRead      ErrorCode = "FILE_READ"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Command errors
	ErrCommandSpawn ErrorCode = "COMMAND_SPAWN"
	ErrCommandExit  ErrorCode = "COMMAND_EXIT"
)

// CrosskitError represents a structured error with code and details
type CrosskitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CrosskitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CrosskitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CrosskitError) Is(target error) bool {
	var targetErr *CrosskitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CrosskitError with the given code and message
func New(code ErrorCode, message string) *CrosskitError {
	return &CrosskitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CrosskitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CrosskitError {
	return &CrosskitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CrosskitError
func Wrap(err error, code ErrorCode, message string) *CrosskitError {
	if err == nil {
		return nil
	}
	return &CrosskitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CrosskitError {
	if err == nil {
		return nil
	}
	return &CrosskitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CrosskitError) WithDetail(key string, value interface{}) *CrosskitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ckErr *CrosskitError
	if errors.As(err, &ckErr) {
		return ckErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CrosskitError
func GetErrorCode(err error) ErrorCode {
	var ckErr *CrosskitError
	if errors.As(err, &ckErr) {
		return ckErr.Code
	}
	return ErrUnknown
}
