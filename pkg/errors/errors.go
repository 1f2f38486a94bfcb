// Package errors provides structured error handling for the Nocturne engine.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid configuration rejected at construction.
	KindConfig
	// KindColorLookup indicates a color-table index outside the table range.
	KindColorLookup
	// KindRender indicates a renderer failure.
	KindRender
	// KindEncode indicates a frame or animation encoding failure.
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindColorLookup:
		return "colorlookup"
	case KindRender:
		return "render"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Nocturne engine.
type Error struct {
	// Op is the operation that failed (e.g., "scene.NewMachine").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error wrapping err.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf creates a structured error from a format string.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err if it is a structured Error,
// KindUnknown otherwise.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}
