// Package errors provides structured error handling for the binding engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAffinity indicates an engine call made off the UI thread.
	KindAffinity
	// KindBinding indicates a wiring mistake, such as a second reader.
	KindBinding
	// KindWriter indicates a writer that failed during fan-out.
	KindWriter
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindAffinity:
		return "affinity"
	case KindBinding:
		return "binding"
	case KindWriter:
		return "writer"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

var (
	// ErrAffinityViolation is wrapped by every error raised when an engine
	// operation runs off the designated UI thread.
	ErrAffinityViolation = stderrors.New("UI thread expected")
	// ErrDuplicateReader is returned when a property already has a reader.
	ErrDuplicateReader = stderrors.New("only one reader per property allowed")
	// ErrNoScope is returned by Bind outside of a WithScope block.
	ErrNoScope = stderrors.New("no binding scope for observable")
)

// BindingError represents a structured error raised by the binding engine.
type BindingError struct {
	// Op is the operation that failed (e.g., "binding.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Property is the bound property name, if applicable.
	Property string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindingError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s [%s] property=%s: %v", e.Op, e.Kind, e.Property, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "platform.Looper").
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

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by the binding engine and its run loop.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindingError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
