// Package serrors attaches a semantic kind to errors so that the transport
// layer can pick a status code and a client-safe message without knowing
// where the error came from.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only values created by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (kind) isKind()         {}

// NewKind creates a category sentinel. Sentinels are comparable.
func NewKind(name string) Kind { return kind{name: name} }

//nolint:gochecknoglobals
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	// ErrConflict covers duplicates and illegal state transitions.
	ErrConflict = NewKind("CONFLICT")
	ErrInternal = NewKind("INTERNAL")
	ErrTimeout  = NewKind("TIMEOUT")
	// ErrUnavailable means a dependency (database, redis) could not be reached.
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrMethodNotAllowed means the path exists but not for the HTTP method used.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED")
)

// Error carries a kind, a message meant for the caller and an optional
// cause meant for the logs. errors.Is and errors.As see both the kind and
// the cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// With returns an error of kind k with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap is With plus a cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOnly returns an error that renders as the kind name.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Invalid is a BAD_REQUEST about a single field, e.g. Invalid("areaSqm", "must be positive").
func Invalid(field, reason string) *Error {
	return With(ErrBadRequest, "%s %s", field, reason)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.cause != nil && errors.Is(e.cause, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.cause != nil && errors.As(e.cause, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.cause }

// KindOf returns the kind of the first *Error in err's chain, or err itself
// when it is a bare Kind. Anything else is ErrInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the first non-empty message along the chain of *Error
// values. Causes are never included.
func MessageOf(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.msg != "" {
			return e.msg
		}
		err = e.cause
	}

	return ""
}
