package sinks

import (
	"go.uber.org/zap/zapcore"
)

// Kind tags the concrete sink variety at creation time, so later passes
// (color installation, teardown) are direct lookups instead of runtime type
// tests.
type Kind int

const (
	KindConsole Kind = iota
	KindColoredConsole
	KindFile
	KindSyslog
	KindNull
)

// String returns the name of the sink kind.
func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindColoredConsole:
		return "colored-console"
	case KindFile:
		return "file"
	case KindSyslog:
		return "syslog"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Descriptor is one output destination. The ID is stable telemetry identity;
// liveness is tracked by the factory arena, not here.
type Descriptor struct {
	ID     string
	Kind   Kind
	Target string

	core   zapcore.Core
	closer func() error
}

// Core exposes the destination to the logging engine.
func (d *Descriptor) Core() zapcore.Core {
	return d.core
}

// Handle addresses an arena slot with a generation check. The zero Handle is
// absent.
type Handle struct {
	index      int
	generation uint32
}

// Valid reports whether the handle was ever issued. It says nothing about
// liveness; use Factory.Get for that.
func (h Handle) Valid() bool {
	return h.generation != 0
}
