// Package errors provides structured error types for seatsort.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the menu and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The seating core only ever fails with three codes, all of them local and
// recoverable:
//   - CAPACITY_EXCEEDED: inserting into a full dataset
//   - INSUFFICIENT_DATA: fewer than the minimum number of values
//   - INVALID_CONFIGURATION: bad rows, columns, mode or odd side
//
// The remaining codes belong to the collaborators around the core (input
// parsing, file import, export formats).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeCapacityExceeded, "dataset holds %d values", n)
//	if errors.Is(err, errors.ErrCodeCapacityExceeded) {
//	    // Ask the user to start a new dataset
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Core errors
	ErrCodeCapacityExceeded     Code = "CAPACITY_EXCEEDED"
	ErrCodeInsufficientData     Code = "INSUFFICIENT_DATA"
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// Collaborator errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsCore reports whether err carries one of the three codes the seating
// core can produce.
func IsCore(err error) bool {
	switch GetCode(err) {
	case ErrCodeCapacityExceeded, ErrCodeInsufficientData, ErrCodeInvalidConfiguration:
		return true
	}
	return false
}
