// Package errors provides structured error handling for devmenu.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid control configuration.
	KindConfig
	// KindGesture indicates a pointer event that could not be handled.
	KindGesture
	// KindCallback indicates a failure inside a host-supplied callback.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGesture:
		return "gesture"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DevMenuError is a structured error raised by devmenu.
type DevMenuError struct {
	// Op is the operation that failed (e.g., "widgets.NewFloatingControl").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DevMenuError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DevMenuError) Unwrap() error {
	return e.Err
}

// ValidationError describes a configuration field that was rejected.
type ValidationError struct {
	// Field is the configuration field name.
	Field string
	// Value is the rejected value.
	Value any
	// Reason says what the value must satisfy.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.OnActivate").
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

// ErrorHandler receives errors reported by devmenu.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DevMenuError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
