package manifest

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why reading a manifest failed.
type Kind int

const (
	// IOError means the file could not be opened or read.
	IOError Kind = iota
	// ParseError means a document is not valid YAML, does not have the
	// expected shape, or holds a storage size that is not a number.
	ParseError
	// MissingFieldError means a PersistentVolumeClaim lacks a field the
	// estimate depends on.
	MissingFieldError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "io error"
	case ParseError:
		return "parse error"
	case MissingFieldError:
		return "missing field"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is returned for every failure while loading a manifest or
// extracting claims from it.
type Error struct {
	Kind Kind
	// Document is the 1-based position of the offending document, or 0
	// when the failure is not tied to one.
	Document int
	// Field is the dotted path of the field involved, if any.
	Field string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Document > 0 {
		msg += fmt.Sprintf(" in document %d", e.Document)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" at %s", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Cause lets errors.Cause from github.com/pkg/errors reach the underlying error.
func (e *Error) Cause() error { return e.Err }

// IsKind reports whether err, or any error it wraps, is a manifest Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
