// Package apperrors classifies failures so the HTTP layer can map them to a
// status code without inspecting store or library errors.
package apperrors

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a Kind, a short client-safe reason and the underlying cause.
// Only Reason is ever shown to callers.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidArgument(reason string) error {
	return &Error{Kind: KindInvalidArgument, Reason: reason}
}

func Unauthenticated(reason string) error {
	return &Error{Kind: KindUnauthenticated, Reason: reason}
}

func NotFound(reason string) error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func Conflict(reason string) error {
	return &Error{Kind: KindConflict, Reason: reason}
}

func Internal(reason string, err error) error {
	return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// KindOf reports the Kind of err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ReasonOf returns the client-safe reason for err.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Reason != "" {
		return e.Reason
	}
	return "internal error"
}
