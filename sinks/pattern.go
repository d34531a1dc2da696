package sinks

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"

	"vsnlog/formatters"
)

// formatCount sizes the per-pattern core table.
const formatCount = int(formatters.Detailed) + 1

// Selector publishes the active pattern to every sink the factory created,
// so a later pattern switch changes the layout of sinks that already exist.
type Selector struct {
	v atomic.Int32
}

// NewSelector returns a selector starting on the given pattern.
func NewSelector(f formatters.Format) *Selector {
	s := &Selector{}
	s.Set(f)
	return s
}

// Set switches the active pattern. Out-of-range values clamp to the default
// pattern.
func (s *Selector) Set(f formatters.Format) {
	if int(f) < 0 || int(f) >= formatCount {
		f = formatters.Default
	}
	s.v.Store(int32(f))
}

// Get reports the active pattern.
func (s *Selector) Get() formatters.Format {
	return formatters.Format(s.v.Load())
}

// patternCore fans each write into the sub-core whose encoder realizes the
// active pattern. One sub-core per pattern shares the destination and the
// level enabler.
type patternCore struct {
	sel   *Selector
	cores [formatCount]zapcore.Core
}

func newPatternCore(sel *Selector, enab zapcore.LevelEnabler, ws zapcore.WriteSyncer, colored bool) zapcore.Core {
	c := &patternCore{sel: sel}
	for i := 0; i < formatCount; i++ {
		c.cores[i] = zapcore.NewCore(encoderFor(formatters.Format(i), colored), ws, enab)
	}
	return c
}

func (c *patternCore) current() zapcore.Core {
	return c.cores[c.sel.Get()]
}

func (c *patternCore) Enabled(l zapcore.Level) bool {
	return c.current().Enabled(l)
}

func (c *patternCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &patternCore{sel: c.sel}
	for i, sub := range c.cores {
		clone.cores[i] = sub.With(fields)
	}
	return clone
}

func (c *patternCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *patternCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.current().Write(ent, fields)
}

func (c *patternCore) Sync() error {
	return c.current().Sync()
}
