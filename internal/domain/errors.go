package domain

import (
	"errors"
	"fmt"
)

// ErrNoCredential indicates that neither provider has a usable API key.
var ErrNoCredential = errors.New("no API key found. Set TOGETHER_API_KEY or OPENAI_API_KEY")

// ErrorKind classifies a failure without exposing the underlying error type.
type ErrorKind string

const (
	// KindConfiguration means no usable credential was found.
	KindConfiguration ErrorKind = "configuration"

	// KindBackendCall means the remote provider call failed.
	KindBackendCall ErrorKind = "backend_call"

	// KindRequestParse means the input could not be parsed or validated.
	KindRequestParse ErrorKind = "request_parse"
)

// Error is the single error type surfaced by the adapters.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

// NewError creates an error of the given kind carrying the cause's text.
// An empty prefix keeps the cause's message as is.
func NewError(kind ErrorKind, prefix string, cause error) *Error {
	msg := prefix
	switch {
	case cause != nil && prefix == "":
		msg = cause.Error()
	case cause != nil:
		msg = fmt.Sprintf("%s: %s", prefix, cause.Error())
	}
	return &Error{
		Kind:    kind,
		Message: msg,
		cause:   cause,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the original error.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of err, or an empty kind when err is not an *Error.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
