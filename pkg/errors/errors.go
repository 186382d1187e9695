// Package errors provides structured error types for vtdesigner.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the document engine and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes follow the failure taxonomy of the document engine:
//   - RANGE_EXHAUSTED: an object type has no free ID left; never retried
//   - MALFORMED_*: unreadable pool or project input, rejected at load
//   - CYCLE: an edit would create a structural cycle, rejected before mutation
//   - NAME_CONFLICT, NOT_FOUND, INVALID_INPUT: caller errors
//   - INTERNAL: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "object %d not found", id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing object
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedProject, origErr, "failed to parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidName  Code = "INVALID_NAME"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Malformed input
	ErrCodeMalformedPool    Code = "MALFORMED_POOL"
	ErrCodeMalformedProject Code = "MALFORMED_PROJECT"

	// Resource errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeRangeExhausted Code = "RANGE_EXHAUSTED"

	// Policy violations
	ErrCodeCycle        Code = "CYCLE"
	ErrCodeNameConflict Code = "NAME_CONFLICT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
