package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of failures the analysis surfaces. Every error
// crossing a surface boundary is tagged with exactly one kind.
type Kind string

const (
	// InvalidInput means a caller-supplied input failed a precondition.
	InvalidInput Kind = "invalid_input"

	// MalformedOutput means the model's response could not be parsed or
	// validated after the one bounded repair attempt.
	MalformedOutput Kind = "malformed_output"

	// NoTopicDetected means aggregation produced zero topics. A legitimate
	// outcome for an unreadable screenshot, not a bug.
	NoTopicDetected Kind = "no_topic_detected"

	// UpstreamUnavailable means the model could not be reached at all.
	UpstreamUnavailable Kind = "upstream_unavailable"
)

// Error tags a failure with its kind. Raw optionally retains the model's
// unparseable response for diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Raw     string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a tagged error.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// WithRaw attaches the raw model output for diagnostics.
func (e *Error) WithRaw(raw string) *Error {
	e.Raw = raw
	return e
}

// KindOf extracts the kind from an error chain. Untagged errors report an
// empty kind.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
