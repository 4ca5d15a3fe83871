// Package errors provides coded errors for the console, configuration and CLI layers.
//
// Codes are stable strings, so callers and tests can branch on the kind of failure without
// matching messages. The library packages (wildcard, tokenize, similarity, pathkey) never
// return these: their operations are total.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of failure.
type ErrorCode string

// Error codes.
const (
	// General errors.
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrIO           ErrorCode = "IO"

	// Console errors.
	ErrUnknownCommand   ErrorCode = "UNKNOWN_COMMAND"
	ErrDuplicateCommand ErrorCode = "DUPLICATE_COMMAND"
	ErrUsage            ErrorCode = "USAGE"

	// Configuration errors.
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Error is a coded error with optional structured details and an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}

	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}

	return false
}

// New creates an error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
}

// Newf creates an error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}

	e := New(code, message)
	e.Wrapped = err

	return e
}

// Wrapf wraps err with a code and a formatted message. It returns nil when err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a detail to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}

	e.Details[key] = value

	return e
}

// IsErrorCode reports whether err, or any error it wraps, is an *Error with code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}

	return false
}

// GetErrorCode returns the code of the first *Error in err's chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrUnknown
}

// GetErrorDetails returns the details of the first *Error in err's chain, or nil.
func GetErrorDetails(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}

	return nil
}
