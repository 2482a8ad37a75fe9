// Package errors classifies conversion failures.
//
// An import either fails to read the text at all or reads it and finds the
// wrong shape. The first case carries PARSE_ERROR, for truncated XML or a
// stray byte before the JSON object. The second carries MALFORMED_FILE, for
// a GEXF file without <graph> or a node whose "x" is not a number. Callers that only care which side of that line an input
// fell on can test with [Is]:
//
//	g, err := convert.FromGEXF(data)
//	if errors.Is(err, errors.ErrCodeMalformed) {
//	    // the document is XML, but not a graph we understand
//	}
//
// A color that cannot be normalized fails the import with INVALID_COLOR
// rather than being dropped. The remaining codes describe problems around a
// conversion, such as an unknown format name or a missing file. The server
// maps every code to an HTTP status.
//
// [Wrap] keeps the underlying error reachable through errors.Unwrap, and
// [UserMessage] renders the short text shown to CLI users.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Conversion errors
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeMalformed    Code = "MALFORMED_FILE"
	ErrCodeInvalidColor Code = "INVALID_COLOR"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// Malformed reports a structural failure. The originating detail is
// deliberately reduced to a short message.
func Malformed(format string, args ...any) *Error {
	return New(ErrCodeMalformed, format, args...)
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
