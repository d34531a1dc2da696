package sinks

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vsnlog/formatters"
)

// Level values used across the facility. Trace sits below zap's debug and
// critical rides on the DPanic slot; the encoders below own their names so
// the zap spellings never leak into output.
const (
	TraceLevel    = zapcore.Level(-2)
	CriticalLevel = zapcore.DPanicLevel
	// OffLevel is above every writable level and silences all sinks.
	OffLevel = zapcore.FatalLevel + 1
)

// severityColors is the fixed severity-to-ANSI mapping installed on colored
// console sinks.
var severityColors = map[zapcore.Level]string{
	TraceLevel:         "\033[36m",    // cyan
	zapcore.DebugLevel: "\033[92m",    // bright green
	zapcore.InfoLevel:  "\033[97m",    // bright white
	zapcore.WarnLevel:  "\033[93m",    // bright yellow
	zapcore.ErrorLevel: "\033[91m",    // bright red
	CriticalLevel:      "\033[97;41m", // white on red
}

const colorReset = "\033[0m"

// levelName renders the facility's spelling of a zap level.
func levelName(l zapcore.Level) string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARN"
	case zapcore.ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return l.CapitalString()
	}
}

// levelEncoder writes plain level names.
func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelName(l))
}

// coloredLevelEncoder wraps level names in the fixed ANSI colors.
func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color, ok := severityColors[l]
	if !ok {
		enc.AppendString(levelName(l))
		return
	}
	enc.AppendString(color + levelName(l) + colorReset)
}

// EncoderConfigFor returns the layout configuration realizing a pattern.
// colored is a surface capability: file sinks pass false so ANSI sequences
// never land in files, whatever the pattern.
func EncoderConfigFor(f formatters.Format, colored bool) zapcore.EncoderConfig {
	if f == formatters.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = levelEncoder
		return cfg
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncodeLevel = levelEncoder
	if colored {
		cfg.EncodeLevel = coloredLevelEncoder
	}
	switch f {
	case formatters.Simple:
		cfg.NameKey = zapcore.OmitKey
		cfg.CallerKey = zapcore.OmitKey
	case formatters.Minimal:
		cfg.TimeKey = zapcore.OmitKey
		cfg.NameKey = zapcore.OmitKey
		cfg.CallerKey = zapcore.OmitKey
	case formatters.Detailed:
		cfg.FunctionKey = "func"
	}
	return cfg
}

// encoderFor realizes a pattern as a concrete encoder: the json pattern gets
// the JSON encoder, every other pattern the console encoder over its layout.
func encoderFor(f formatters.Format, colored bool) zapcore.Encoder {
	cfg := EncoderConfigFor(f, colored)
	if f == formatters.JSON {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}
