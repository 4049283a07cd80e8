// Package tabularerrors provides structured error handling for the tabular
// library. Errors carry a kind, a human-readable message, and a details map
// so callers can branch on failures programmatically instead of parsing
// message strings.
//
// Basic usage:
//
//	err := tabularerrors.New(tabularerrors.KindValue, "header_rows must be >= 0").
//	    WithDetail("param", "header_rows").
//	    WithDetail("value", headerRows)
//
//	if tabularerrors.IsKind(err, tabularerrors.KindLookup) {
//	    // unknown column or out-of-range row index
//	}
package tabularerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind categorizes an error for handling strategies.
type Kind string

const (
	// KindType indicates an argument of the wrong shape, such as a nil
	// chunk source where a value is required.
	KindType Kind = "type"
	// KindValue indicates an argument outside its valid range, such as a
	// negative header row count or an empty dataset.
	KindValue Kind = "value"
	// KindLookup indicates an unknown column name or an out-of-range row
	// index.
	KindLookup Kind = "lookup"
	// KindConfig indicates an invalid configuration file or setting.
	KindConfig Kind = "config"
	// KindFile indicates a file operation failure in the outer layers.
	KindFile Kind = "file"
	// KindInternal indicates an unexpected internal failure.
	KindInternal Kind = "internal"
)

// Error is a structured error with a kind, message, optional cause, and
// key-value details for programmatic inspection.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []Frame
}

// Frame is a single call-stack frame captured at error creation.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key-value detail to the error. Chainable.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an error of the given kind, capturing the call stack at the
// point of creation.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps err with additional context, preserving it as the cause.
// If err is already an *Error its stack is carried forward. Returns nil
// when err is nil.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Kind:    kind,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsKind reports whether err is an *Error of the given kind anywhere in
// its chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the kind of err, or KindInternal when err is not a
// structured *Error.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return KindInternal
	}
	return e.Kind
}

func captureStack(skip int) []Frame {
	const maxFrames = 16
	frames := make([]Frame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		frames = append(frames, Frame{Function: fn.Name(), File: file, Line: line})
	}

	return frames
}
