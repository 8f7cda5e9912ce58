// Package simerrors provides the structured error type shared across the
// simulator: configuration errors, invariant violations, and the I/O errors
// raised while redirecting trace output.
package simerrors

import (
	"errors"
	"fmt"
)

// Code categorizes an Error for exit-code mapping at the CLI boundary.
type Code string

const (
	// CodeConfig marks a bad argument, out-of-range value, or unknown
	// scheduler/scenario name. No simulation runs.
	CodeConfig Code = "CONFIG"

	// CodeInvariant marks a consistency bug inside the core: a lost
	// request owner, a deadlocked event queue, a cache index mismatch.
	CodeInvariant Code = "INVARIANT"

	// CodeIO marks a failure writing trace output to a file. Recoverable:
	// callers fall back to stdout and continue.
	CodeIO Code = "IO"

	// CodeInterrupted marks a user-requested stop (SIGINT/SIGTERM).
	CodeInterrupted Code = "INTERRUPTED"
)

// Error is a structured simulator error with an operation tag, a category,
// a human-readable message, and an optional wrapped cause.
type Error struct {
	Op    string // operation that failed, e.g. "validate_config", "pick_next"
	Code  Code
	Msg   string
	Inner error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Inner != nil {
		msg = e.Inner.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("disksim: %s: %s (%s)", e.Op, msg, e.Code)
	}
	return fmt.Sprintf("disksim: %s (%s)", msg, e.Code)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is reports whether target is (or wraps) an *Error with the same Code. It
// does not compare against the wrapped cause itself; errors.Is reaches that
// through Unwrap.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Configf builds a CodeConfig error.
func Configf(op, format string, args ...any) *Error {
	return &Error{Op: op, Code: CodeConfig, Msg: fmt.Sprintf(format, args...)}
}

// Invariantf builds a CodeInvariant error.
func Invariantf(op, format string, args ...any) *Error {
	return &Error{Op: op, Code: CodeInvariant, Msg: fmt.Sprintf(format, args...)}
}

// IOErrorf wraps an I/O failure (e.g. opening the output file) as CodeIO.
func IOErrorf(op string, inner error) *Error {
	return &Error{Op: op, Code: CodeIO, Msg: inner.Error(), Inner: inner}
}

// Interrupted builds a CodeInterrupted error.
func Interrupted(op string) *Error {
	return &Error{Op: op, Code: CodeInterrupted, Msg: "interrupted by user"}
}
