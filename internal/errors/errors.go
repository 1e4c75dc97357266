// Package errors provides structured application errors with stable codes.
// Extraction failures map onto three codes: UNREADABLE_INPUT (the input
// cannot be opened or decoded as bytes), MALFORMED_CONTENT (the bytes
// violate the format's own grammar) and UNSUPPORTED_LEGACY_FORMAT (a
// recognized legacy encoding with a distinct corrective message).
package errors

import (
	"errors"
	"fmt"
)

const (
	CodeInternal          = "INTERNAL_ERROR"
	CodeUnreadableInput   = "UNREADABLE_INPUT"
	CodeMalformedContent  = "MALFORMED_CONTENT"
	CodeUnsupportedLegacy = "UNSUPPORTED_LEGACY_FORMAT"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message
func Newf(code, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving an existing code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    CodeOf(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode wraps an error under a specific code and message
func WithCode(code string, err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// CodeOf returns the code of the nearest AppError in the chain, or
// INTERNAL_ERROR when the error carries no code.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsCode reports whether the error chain carries the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
