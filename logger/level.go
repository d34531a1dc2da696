package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"vsnlog/sinks"
)

// Level is the facility's severity scale, totally ordered from Trace up to
// Off. The numeric values are part of the configuration surface: log_level
// entries are stored as these integers.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
	Off
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Critical:
		return "critical"
	case Off:
		return "off"
	default:
		return "info"
	}
}

// ParseLevel maps a level name to its Level, defaulting to Info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return Trace
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	case "critical":
		return Critical
	case "off":
		return Off
	default:
		return Info
	}
}

// LevelFromInt clamps a configured integer onto the level scale.
func LevelFromInt(n int) Level {
	if n < int(Trace) || n > int(Off) {
		return Info
	}
	return Level(n)
}

// zapLevel maps the facility level onto the engine's scale.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Trace:
		return sinks.TraceLevel
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Critical:
		return sinks.CriticalLevel
	case Off:
		return sinks.OffLevel
	default:
		return zapcore.InfoLevel
	}
}
