// Package vsnlog is a structured logging facility for native applications: a
// process-wide logger registry, a layered configuration store, bounded sink
// factories and message formatters, all over a narrow interface to the
// underlying zap engine.
package vsnlog

import (
	"sync"

	"vsnlog/logger"
)

// Level is the facility's severity scale.
type Level = logger.Level

// Severity levels, ordered from Trace up to Off.
const (
	TraceLevel    = logger.Trace
	DebugLevel    = logger.Debug
	InfoLevel     = logger.Info
	WarnLevel     = logger.Warn
	ErrorLevel    = logger.Error
	CriticalLevel = logger.Critical
	OffLevel      = logger.Off
)

var (
	registryMu sync.Mutex
	registry   *logger.Registry
)

// Registry returns the process-wide logger registry, constructing it on
// first use. Applications that prefer explicit wiring can ignore this and
// build their own logger.Registry.
func Registry() *logger.Registry {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry == nil {
		registry = logger.NewRegistry(nil, nil)
	}
	return registry
}

// Initialize sets up the default logger with the standard log directory and
// info level.
func Initialize(appName string) error {
	return InitializeFull(appName, logger.DefaultLogDir, logger.Info)
}

// InitializeWithPath sets up the default logger under the given directory.
func InitializeWithPath(appName, logDir string) error {
	return InitializeFull(appName, logDir, logger.Info)
}

// InitializeWithLevel sets up the default logger at the given severity.
func InitializeWithLevel(appName string, level Level) error {
	return InitializeFull(appName, logger.DefaultLogDir, level)
}

// InitializeFull sets up the default logger with explicit directory and
// severity. Configuration store values override both.
func InitializeFull(appName, logDir string, level Level) error {
	return Registry().Initialize(appName, logDir, level)
}

// InitializeWithConfig loads a configuration file, merges environment
// overrides and initializes from the result.
func InitializeWithConfig(appName, configFile string) error {
	return Registry().InitializeWithConfig(appName, configFile)
}

// IsInitialized reports whether a successful Initialize has run since the
// last Shutdown.
func IsInitialized() bool {
	return Registry().Ready()
}

// Default returns the process-wide default logger, creating a minimal one if
// Initialize was never called.
func Default() *logger.Logger {
	return Registry().Default()
}

// Trace logs at trace severity with the caller's source location.
func Trace(format string, args ...any) error {
	return Registry().Default().Trace(logger.Here(1), format, args...)
}

// Debug logs at debug severity with the caller's source location.
func Debug(format string, args ...any) error {
	return Registry().Default().Debug(logger.Here(1), format, args...)
}

// Info logs at info severity with the caller's source location.
func Info(format string, args ...any) error {
	return Registry().Default().Info(logger.Here(1), format, args...)
}

// Warn logs at warn severity with the caller's source location.
func Warn(format string, args ...any) error {
	return Registry().Default().Warn(logger.Here(1), format, args...)
}

// Error logs at error severity with the caller's source location.
func Error(format string, args ...any) error {
	return Registry().Default().Error(logger.Here(1), format, args...)
}

// Critical logs at critical severity with the caller's source location.
func Critical(format string, args ...any) error {
	return Registry().Default().Critical(logger.Here(1), format, args...)
}

// SetLevel changes the global severity threshold.
func SetLevel(level Level) {
	Registry().SetLevel(level)
}

// SetPattern switches the active pattern by name; unknown names fall back to
// the default pattern.
func SetPattern(name string) {
	Registry().SetPattern(name)
}

// Flush drains the default logger's sinks.
func Flush() error {
	return Registry().Flush()
}

// Shutdown releases every logger and sink and returns the facility to its
// uninitialized state.
func Shutdown() error {
	return Registry().Shutdown()
}
