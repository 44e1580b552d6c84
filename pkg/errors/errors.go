// Package errors provides structured error types for the graphport library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, server and library surfaces
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Format resolution and dispatch have their own codes so callers can branch
// on the failure kind without string matching:
//
//	g, err := format.Read("graph.txt", format.ReadOptions{})
//	if errors.Is(err, errors.ErrCodeAmbiguousFormat) {
//	    // ask the user which format applies
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeTempResource, origErr, "create temp file for %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Format resolution and dispatch errors
	ErrCodeUnknownFormat   Code = "UNKNOWN_FORMAT"   // no extension rule matched and sniffing was inconclusive
	ErrCodeAmbiguousFormat Code = "AMBIGUOUS_FORMAT" // content sniffing found a genuinely ambiguous file
	ErrCodeUnsupportedOp   Code = "UNSUPPORTED_OPERATION"

	// Input validation errors
	ErrCodeValidation   Code = "VALIDATION"
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeParse        Code = "PARSE_ERROR"

	// Resource errors
	ErrCodeTempResource Code = "TEMP_RESOURCE"
	ErrCodeNotFound     Code = "NOT_FOUND"

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
