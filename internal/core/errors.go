package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures brewstamp can report.
type ErrorKind int

const (
	KindCommandNotFound ErrorKind = iota + 1
	KindCommandRunFailed
	KindStringFormat
	KindInvalidPattern
	KindPatternNotFound
)

// Sentinels for errors.Is matching by kind.
var (
	ErrCommandNotFound  = &Error{Kind: KindCommandNotFound}
	ErrCommandRunFailed = &Error{Kind: KindCommandRunFailed}
	ErrStringFormat     = &Error{Kind: KindStringFormat}
	ErrInvalidPattern   = &Error{Kind: KindInvalidPattern}
	ErrPatternNotFound  = &Error{Kind: KindPatternNotFound}
)

// String returns a short identifier for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindCommandNotFound:
		return "command_not_found"
	case KindCommandRunFailed:
		return "command_run_failed"
	case KindStringFormat:
		return "string_format"
	case KindInvalidPattern:
		return "invalid_pattern"
	case KindPatternNotFound:
		return "pattern_not_found"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the brew and extract packages.
// Command is set for command failures, Pattern for regex failures.
type Error struct {
	Kind    ErrorKind
	Command string
	Pattern string
	Detail  string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindCommandNotFound:
		msg = fmt.Sprintf("command not found: %s", e.Command)
	case KindCommandRunFailed:
		msg = fmt.Sprintf("command execution failed: %s", e.Command)
	case KindStringFormat:
		msg = "string format error"
	case KindInvalidPattern:
		msg = fmt.Sprintf("regex invalid pattern: %s", e.Pattern)
	case KindPatternNotFound:
		msg = fmt.Sprintf("pattern not found %s", e.Pattern)
	default:
		msg = "unknown error"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
// Sentinels carry no command or pattern, so only the kind is compared.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// CommandNotFound returns a KindCommandNotFound error for name.
func CommandNotFound(name string, err error) *Error {
	return &Error{Kind: KindCommandNotFound, Command: name, Err: err}
}

// CommandRunFailed returns a KindCommandRunFailed error for command.
// detail is usually the trimmed stderr of the failed process.
func CommandRunFailed(command, detail string, err error) *Error {
	return &Error{Kind: KindCommandRunFailed, Command: command, Detail: detail, Err: err}
}

// StringFormat returns a KindStringFormat error.
func StringFormat(err error) *Error {
	return &Error{Kind: KindStringFormat, Err: err}
}

// InvalidPattern returns a KindInvalidPattern error for pattern.
func InvalidPattern(pattern string, err error) *Error {
	return &Error{Kind: KindInvalidPattern, Pattern: pattern, Err: err}
}

// PatternNotFound returns a KindPatternNotFound error for pattern.
func PatternNotFound(pattern string) *Error {
	return &Error{Kind: KindPatternNotFound, Pattern: pattern}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
