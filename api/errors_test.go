// Package api
// Author: momentics <momentics@gmail.com>

package api

import (
	"errors"
	"fmt"
	"testing"
)

// TestStatusOf_Mapping checks the error-to-status projection.
func TestStatusOf_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{ErrExhausted, StatusExhausted},
		{ErrDoubleReturn, StatusDoubleReturn},
		{ErrOutstandingBorrows, StatusOutstandingBorrows},
		{ErrNotConfigured, StatusNotConfigured},
		{ErrConfig, StatusNotConfigured},
		{fmt.Errorf("wrapped: %w", ErrExhausted), StatusExhausted},
		{errors.New("unrelated"), StatusNotConfigured},
	}
	for i, c := range cases {
		if got := StatusOf(c.err); got != c.want {
			t.Errorf("case %d: expected %v, got %v", i, c.want, got)
		}
	}
}

// TestStatus_RoundTrip checks that Err inverts StatusOf for the closed set.
func TestStatus_RoundTrip(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusNotConfigured, StatusExhausted,
		StatusDoubleReturn, StatusOutstandingBorrows} {
		if got := StatusOf(s.Err()); got != s {
			t.Errorf("Expected %v to round-trip, got %v", s, got)
		}
	}
	if StatusOK.Err() != nil {
		t.Error("Expected nil error for StatusOK")
	}
}

// TestStatus_String checks the human-readable names.
func TestStatus_String(t *testing.T) {
	if StatusExhausted.String() != "exhausted" {
		t.Errorf("Expected \"exhausted\", got %q", StatusExhausted.String())
	}
	if Status(99).String() != "status(99)" {
		t.Errorf("Expected fallback name, got %q", Status(99).String())
	}
}

// TestError_WrapsClass checks that structured errors stay classifiable.
func TestError_WrapsClass(t *testing.T) {
	err := NewError(ErrConfig, "object size must be positive").
		WithContext("obj_size", -4)

	if !errors.Is(err, ErrConfig) {
		t.Error("Expected errors.Is to see ErrConfig through the wrapper")
	}
	if err.Status() != StatusNotConfigured {
		t.Errorf("Expected StatusNotConfigured, got %v", err.Status())
	}
	msg := err.Error()
	if msg == "object size must be positive" {
		t.Error("Expected context to appear in the message")
	}

	bare := NewError(ErrExhausted, "no free buffers")
	if bare.Error() != "no free buffers" {
		t.Errorf("Expected bare message, got %q", bare.Error())
	}
	if bare.Status() != StatusExhausted {
		t.Errorf("Expected StatusExhausted, got %v", bare.Status())
	}
}
