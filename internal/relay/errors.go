package relay

import (
	"errors"
	"fmt"
)

// ErrorCode classifies relay client errors.
type ErrorCode int

const (
	// CodeNotReady indicates the relay has no stored result for the request
	// id yet. This is the expected steady state while a job is in flight,
	// not a failure.
	CodeNotReady ErrorCode = iota
	// CodeUnreachable indicates a connection-level failure reaching the
	// relay (refused, DNS, timeout).
	CodeUnreachable
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeNotReady:
		return "not_ready"
	case CodeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Error is a structured relay client error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// RequestID is the job being polled.
	RequestID string
	// HealthURL is the derived health endpoint, for diagnosis when the
	// relay is unreachable.
	HealthURL string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case CodeNotReady:
		return fmt.Sprintf("relay: no result stored for request %q yet", e.RequestID)
	case CodeUnreachable:
		return fmt.Sprintf("relay: unreachable (health endpoint: %s): %v", e.HealthURL, e.Err)
	default:
		return fmt.Sprintf("relay: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// IsNotReady checks if an error means the result is not stored yet.
func IsNotReady(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotReady
}

// IsUnreachable checks if an error is a connection-level relay failure.
func IsUnreachable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeUnreachable
}
