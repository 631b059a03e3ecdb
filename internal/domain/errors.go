package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrRateLimited     = errors.New("rate limited")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnreachable     = errors.New("unreachable")
	ErrMalformed       = errors.New("malformed response")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind is the classified failure category surfaced across the service
// boundary. It mirrors the sentinel errors above.
type ErrorKind string

const (
	ErrorKindNotFound        ErrorKind = "not_found"
	ErrorKindRateLimited     ErrorKind = "rate_limited"
	ErrorKindUnauthorized    ErrorKind = "unauthorized"
	ErrorKindUnreachable     ErrorKind = "unreachable"
	ErrorKindMalformed       ErrorKind = "malformed_response"
	ErrorKindInvalidArgument ErrorKind = "invalid_argument"
)

// ClassifiedError is the only error shape that crosses the service boundary:
// a taxonomy kind plus a human-readable cause. Raw transport errors and
// stack traces never do.
type ClassifiedError struct {
	Kind    ErrorKind
	Message string
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap maps the classified kind back to its sentinel so callers can use
// errors.Is against the taxonomy.
func (e *ClassifiedError) Unwrap() error {
	switch e.Kind {
	case ErrorKindNotFound:
		return ErrNotFound
	case ErrorKindRateLimited:
		return ErrRateLimited
	case ErrorKindUnauthorized:
		return ErrUnauthorized
	case ErrorKindUnreachable:
		return ErrUnreachable
	case ErrorKindMalformed:
		return ErrMalformed
	case ErrorKindInvalidArgument:
		return ErrInvalidArgument
	}
	return nil
}

// Classified wraps err into a ClassifiedError with the given kind.
func Classified(kind ErrorKind, format string, args ...any) *ClassifiedError {
	return &ClassifiedError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf classifies an error against the sentinel taxonomy. Unrecognized
// errors classify as Unreachable: by the time an error reaches the boundary
// every known cause has already been mapped, so anything else is a transport
// problem.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrorKindNotFound
	case errors.Is(err, ErrRateLimited):
		return ErrorKindRateLimited
	case errors.Is(err, ErrUnauthorized):
		return ErrorKindUnauthorized
	case errors.Is(err, ErrMalformed):
		return ErrorKindMalformed
	case errors.Is(err, ErrInvalidArgument):
		return ErrorKindInvalidArgument
	default:
		return ErrorKindUnreachable
	}
}
