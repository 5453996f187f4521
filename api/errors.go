// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values and the boundary status-code set.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrConfig             = fmt.Errorf("invalid pool configuration")
	ErrExhausted          = fmt.Errorf("pool exhausted")
	ErrDoubleReturn       = fmt.Errorf("buffer is not borrowed from this pool")
	ErrOutstandingBorrows = fmt.Errorf("borrowed buffers still outstanding")
	ErrNotConfigured      = fmt.Errorf("pool handle not configured")
)

// Status is the closed result-code set used at process boundaries, where
// the consumer may live in a different runtime and cannot unwrap Go error
// chains. Values are stable and safe to carry across an ABI.
type Status uint32

const (
	StatusOK Status = iota
	StatusNotConfigured
	StatusExhausted
	StatusDoubleReturn
	StatusOutstandingBorrows
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotConfigured:
		return "not-configured"
	case StatusExhausted:
		return "exhausted"
	case StatusDoubleReturn:
		return "double-return"
	case StatusOutstandingBorrows:
		return "outstanding-borrows"
	default:
		return fmt.Sprintf("status(%d)", uint32(s))
	}
}

// Err converts a boundary status back into the matching library error.
// StatusOK yields nil.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusExhausted:
		return ErrExhausted
	case StatusDoubleReturn:
		return ErrDoubleReturn
	case StatusOutstandingBorrows:
		return ErrOutstandingBorrows
	default:
		return ErrNotConfigured
	}
}

// StatusOf maps library errors onto the boundary status set. Configuration
// failures map to StatusNotConfigured: a handle that failed creation is
// indistinguishable, from the far side, from one that never existed.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrExhausted):
		return StatusExhausted
	case errors.Is(err, ErrDoubleReturn):
		return StatusDoubleReturn
	case errors.Is(err, ErrOutstandingBorrows):
		return StatusOutstandingBorrows
	default:
		return StatusNotConfigured
	}
}

// Error represents a structured error with class, message and context.
type Error struct {
	Err     error
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

// Unwrap exposes the wrapped class so errors.Is sees through the context.
func (e *Error) Unwrap() error { return e.Err }

// Status reports the boundary code of the wrapped class.
func (e *Error) Status() Status { return StatusOf(e.Err) }

// NewError wraps a sentinel class with a specific message.
func NewError(class error, message string) *Error {
	return &Error{
		Err:     class,
		Message: message,
		Context: make(map[string]any),
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
