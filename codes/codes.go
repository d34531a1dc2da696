package codes

import (
	"errors"
	"fmt"
)

// Code classifies the outcome of a logging-facility operation.
type Code uint8

const (
	// OK reports a successful operation. Functions signal it with a nil error.
	OK Code = 0
	// InvalidParameter reports a rejected argument.
	InvalidParameter Code = 1
	// ResourceUnavailable reports a capacity bound that has been reached.
	ResourceUnavailable Code = 2
	// AllocationFailed reports that a resource could not be constructed.
	AllocationFailed Code = 3
	// PermissionDenied reports insufficient permissions.
	PermissionDenied Code = 4
	// PathCreationFailed reports a failed directory creation.
	PathCreationFailed Code = 5
	// NotInitialized reports use of a component before initialization.
	NotInitialized Code = 6
	// ConfigError reports a configuration problem.
	ConfigError Code = 7
	// InvalidState reports an operation invalid in the current state.
	InvalidState Code = 8
	// FileError reports a failed file operation.
	FileError Code = 9
	// Unknown reports an unclassified failure.
	Unknown Code = 255
)

// String returns the name of the code.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case InvalidParameter:
		return "invalid parameter"
	case ResourceUnavailable:
		return "resource unavailable"
	case AllocationFailed:
		return "allocation failed"
	case PermissionDenied:
		return "permission denied"
	case PathCreationFailed:
		return "path creation failed"
	case NotInitialized:
		return "not initialized"
	case ConfigError:
		return "config error"
	case InvalidState:
		return "invalid state"
	case FileError:
		return "file error"
	default:
		return "unknown"
	}
}

// Error carries a result code alongside a human-readable message and an
// optional wrapped cause.
type Error struct {
	Code  Code
	Msg   string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Cause)
	}
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// E builds an error with the given code and formatted message.
func E(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Of extracts the code from an error chain. A nil error is OK and an error
// that carries no code is Unknown.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// Is reports whether the error chain carries the given code.
func Is(err error, code Code) bool {
	return Of(err) == code
}
