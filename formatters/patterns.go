package formatters

import "strings"

// Format enumerates the built-in output layouts.
type Format int

const (
	// Default is the fallback layout for unrecognized names.
	Default Format = iota
	JSON
	Console
	Simple
	Minimal
	Colored
	Detailed
)

// Parse maps a format name to its Format. Unknown names parse to Default so
// the mapping is total.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON
	case "console":
		return Console
	case "simple":
		return Simple
	case "minimal":
		return Minimal
	case "colored":
		return Colored
	case "detailed":
		return Detailed
	default:
		return Default
	}
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Console:
		return "console"
	case Simple:
		return "simple"
	case Minimal:
		return "minimal"
	case Colored:
		return "colored"
	case Detailed:
		return "detailed"
	default:
		return "default"
	}
}

// Pattern returns the layout template for the format. Placeholders use the
// %{name} spelling; %{name:-N} left-pads to N columns.
func (f Format) Pattern() string {
	switch f {
	case JSON:
		return `{"timestamp":"%{time}","level":"%{level}","logger":"%{logger}","thread":"%{tid}","message":"%{message}"}`
	case Console:
		return "%{time} %{tz} [%{level}] [%{logger}] [%{tid}] %{message}"
	case Simple:
		return "[%{time}] [%{level}] %{message}"
	case Minimal:
		return "%{level} %{message}"
	case Colored:
		return "%{time} %{tz} [%{level:-8}] [%{logger:-10}] [%{pid:-5} %{tid:-5}] [%{file}:%{line}] %{message}"
	case Detailed:
		return "%{time} %{tz} [%{level:-8}] [%{logger:-10}] [%{pid:-5} %{tid:-5}] [%{file}:%{line}:%{func}] %{message}"
	default:
		return "%{time} %{tz} [%{level}] [%{logger}] [%{tid}] %{message}"
	}
}

// GetPattern resolves a format name straight to its pattern template.
func GetPattern(name string) string {
	return Parse(name).Pattern()
}
