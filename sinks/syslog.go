package sinks

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// syslogger is the leveled surface of *syslog.Writer the core dispatches on.
type syslogger interface {
	Debug(m string) error
	Info(m string) error
	Warning(m string) error
	Err(m string) error
	Crit(m string) error
}

// syslogCore routes each record through the daemon method matching its
// severity, so the syslog priority follows the record level instead of the
// connection default. The daemon stamps time and priority itself; the
// encoder carries only the message text.
type syslogCore struct {
	zapcore.LevelEnabler
	enc zapcore.Encoder
	w   syslogger
}

func newSyslogCore(enab zapcore.LevelEnabler, w syslogger) *syslogCore {
	cfg := zapcore.EncoderConfig{MessageKey: "msg", LineEnding: "\n"}
	return &syslogCore{
		LevelEnabler: enab,
		enc:          zapcore.NewConsoleEncoder(cfg),
		w:            w,
	}
}

func (c *syslogCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.enc = c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return &clone
}

func (c *syslogCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *syslogCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	msg := strings.TrimRight(buf.String(), "\n")
	buf.Free()

	switch {
	case ent.Level < zapcore.InfoLevel:
		// Trace and debug both carry the daemon's debug priority.
		return c.w.Debug(msg)
	case ent.Level == zapcore.InfoLevel:
		return c.w.Info(msg)
	case ent.Level == zapcore.WarnLevel:
		return c.w.Warning(msg)
	case ent.Level == zapcore.ErrorLevel:
		return c.w.Err(msg)
	default:
		return c.w.Crit(msg)
	}
}

func (c *syslogCore) Sync() error {
	return nil
}
