// Package errors provides structured error handling for the muv landing page.
//
// Most failures in muv are environmental (a content file that does not parse,
// a terminal that cannot be initialised, a host without intersection
// observation). They are reported through a single process handler so the
// presentation layer can keep running with a degraded page instead of
// crashing.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindContent indicates a page content loading or validation error.
	KindContent
	// KindRender indicates a terminal rendering error.
	KindRender
	// KindVisibility indicates that visibility observation is unavailable.
	KindVisibility
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindContent:
		return "content"
	case KindRender:
		return "render"
	case KindVisibility:
		return "visibility"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured muv error.
type Error struct {
	// Op is the operation that failed (e.g., "visibility.Detector.Attach").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error for op and kind wrapping err. It returns nil if err is nil.
func E(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.App.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by muv components.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Re-exports so callers only need this package.
var (
	Is  = stderrors.Is
	As  = stderrors.As
	New = stderrors.New
)
