// Package serrors attaches a semantic kind to errors so the API can pick a
// status code and the crawler can tell a degraded outcome from a bug, while
// errors.Is and errors.As keep working on the wrapped cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Kinds are sentinels: compare them with errors.Is.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a kind. name is what API error responses report as code.
func NewKind(name string) Kind { return kind{s: name} }

// Request outcomes mapped onto HTTP status codes.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	// ErrTimeout, ErrUnavailable and ErrRateLimited are transient failures of
	// an outbound collaborator such as the completion service.
	ErrTimeout     = NewKind("TIMEOUT")
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Crawl pipeline kinds. Per-page failures are reported through the fetcher's
// own error type; these cover the outcomes that surface past a single page.
var (
	// ErrHomepageUnreachable indicates the homepage of a site could not be fetched,
	// so the site produced a degraded result.
	ErrHomepageUnreachable = NewKind("HOMEPAGE_UNREACHABLE")
	// ErrClassifierUnavailable indicates the model-backed page classifier failed
	// and the heuristic verdict was used.
	ErrClassifierUnavailable = NewKind("CLASSIFIER_UNAVAILABLE")
	// ErrCountryLLMUnavailable indicates the model-backed country fallback failed
	// and the country stayed unknown.
	ErrCountryLLMUnavailable = NewKind("COUNTRY_LLM_UNAVAILABLE")
)

// KindOf returns the first semantic kind found in the error chain, or nil.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind()
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// Error is an error of a given Kind with an optional message and cause.
// Its text is "msg: cause", falling back to whichever part is set and finally
// to the kind name. errors.Is and errors.As match the kind as well as the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error of kind k without message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

// As assigns the kind, or the first match in the cause chain, to target.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }
