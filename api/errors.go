// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error kinds shared by every memview boundary. All failures are synchronous
// and all-or-nothing: an operation either yields a fully valid value or
// reports one of these and leaves no partial state behind.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the library. Constructors wrap these, so
// callers match with errors.Is.
var (
	ErrNilSequence         = errors.New("backing sequence is nil")
	ErrOutOfRange          = errors.New("start or length out of range")
	ErrDestinationTooShort = errors.New("destination too short")
	ErrInvalidOperation    = errors.New("type not representable over raw memory")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrNotSupported        = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNilSequence
	ErrCodeOutOfRange
	ErrCodeDestinationTooShort
	ErrCodeInvalidOperation
	ErrCodeIndexOutOfRange
	ErrCodeNotSupported
)

// sentinel maps a code to the sentinel callers match against.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeNilSequence:
		return ErrNilSequence
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeDestinationTooShort:
		return ErrDestinationTooShort
	case ErrCodeInvalidOperation:
		return ErrInvalidOperation
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case ErrCodeNotSupported:
		return ErrNotSupported
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap lets errors.Is match the sentinel for e's code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
