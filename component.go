package vsnlog

import "vsnlog/logger"

// Component scopes logging calls under a bracketed component tag, so
// subsystems can share the default logger without losing attribution.
type Component string

// prefix prepends the component tag to the format string. The combined
// string is still subject to the format-length bound.
func (c Component) prefix(format string) string {
	return "[" + string(c) + "] " + format
}

// Trace logs at trace severity under the component tag.
func (c Component) Trace(format string, args ...any) error {
	return Registry().Default().Trace(logger.Here(1), c.prefix(format), args...)
}

// Debug logs at debug severity under the component tag.
func (c Component) Debug(format string, args ...any) error {
	return Registry().Default().Debug(logger.Here(1), c.prefix(format), args...)
}

// Info logs at info severity under the component tag.
func (c Component) Info(format string, args ...any) error {
	return Registry().Default().Info(logger.Here(1), c.prefix(format), args...)
}

// Warn logs at warn severity under the component tag.
func (c Component) Warn(format string, args ...any) error {
	return Registry().Default().Warn(logger.Here(1), c.prefix(format), args...)
}

// Error logs at error severity under the component tag.
func (c Component) Error(format string, args ...any) error {
	return Registry().Default().Error(logger.Here(1), c.prefix(format), args...)
}

// Critical logs at critical severity under the component tag.
func (c Component) Critical(format string, args ...any) error {
	return Registry().Default().Critical(logger.Here(1), c.prefix(format), args...)
}
