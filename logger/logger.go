package logger

import (
	"fmt"

	"vsnlog/codes"
	"vsnlog/sinks"
)

// MaxFormatLength bounds the format string accepted by every logging call,
// enforced before any formatting happens.
const MaxFormatLength = 256

// Logger is a named wrapper over an engine handle and the sink handles that
// back it.
type Logger struct {
	name   string
	engine Engine
	handle Handle
	sinks  []sinks.Handle
}

// Name returns the logger's registered name.
func (l *Logger) Name() string {
	return l.name
}

// Sinks returns the handles of the sinks this logger holds.
func (l *Logger) Sinks() []sinks.Handle {
	return l.sinks
}

// LogWithLocation validates and dispatches one record. A failing log call
// must never unwind into the caller: panics out of the rendering or dispatch
// path are swallowed into an Unknown result.
func (l *Logger) LogWithLocation(loc Location, level Level, format string, args ...any) (err error) {
	if format == "" {
		return codes.E(codes.InvalidParameter, "empty format string")
	}
	if len(format) > MaxFormatLength {
		return codes.E(codes.InvalidParameter, "format string exceeds %d characters", MaxFormatLength)
	}
	if l == nil || l.handle == nil {
		return codes.E(codes.NotInitialized, "logger has no engine handle")
	}

	defer func() {
		if r := recover(); r != nil {
			err = codes.E(codes.Unknown, "log dispatch panicked: %v", r)
		}
	}()

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return l.engine.Write(l.handle, level, loc, msg)
}

// Trace logs at trace severity.
func (l *Logger) Trace(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Trace, format, args...)
}

// Debug logs at debug severity.
func (l *Logger) Debug(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Debug, format, args...)
}

// Info logs at info severity.
func (l *Logger) Info(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Info, format, args...)
}

// Warn logs at warn severity.
func (l *Logger) Warn(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Warn, format, args...)
}

// Error logs at error severity.
func (l *Logger) Error(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Error, format, args...)
}

// Critical logs at critical severity.
func (l *Logger) Critical(loc Location, format string, args ...any) error {
	return l.LogWithLocation(loc, Critical, format, args...)
}

// Flush drains the logger's sinks.
func (l *Logger) Flush() error {
	if l == nil || l.handle == nil {
		return codes.E(codes.NotInitialized, "logger has no engine handle")
	}
	return l.engine.Flush(l.handle)
}
