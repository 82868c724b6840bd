// Package apperr defines the error kinds services return to the HTTP
// boundary. Handlers never pick status codes for these; the envelope
// package translates a Kind into a status in one place.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the boundary translation table.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidCredentials
	KindWeakPassword
	KindDuplicate
	KindInvalidArgument
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindWeakPassword:
		return "weak_password"
	case KindDuplicate:
		return "duplicate"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error carries a client-safe message. Err, when set, is the underlying
// cause and is never written to a response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind, so sentinel values such as
// ErrNotFound work with errors.Is regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrWeakPassword       = &Error{Kind: KindWeakPassword}
	ErrDuplicate          = &Error{Kind: KindDuplicate}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
)

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func InvalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: msg}
}

func WeakPassword(msg string) *Error { return &Error{Kind: KindWeakPassword, Message: msg} }

func Duplicate(msg string) *Error { return &Error{Kind: KindDuplicate, Message: msg} }

func InvalidArgument(msg string) *Error { return &Error{Kind: KindInvalidArgument, Message: msg} }

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of the first *Error in err's
// chain, or "" when there is none.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
