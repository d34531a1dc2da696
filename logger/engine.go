package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vsnlog/codes"
)

// Handle identifies a named logger registered with the engine.
type Handle interface {
	Name() string
}

// Engine is the narrow boundary to the underlying logging engine: register a
// named logger over a sink set, look one up, write a located record, flush,
// tear everything down. Nothing above this interface touches engine types.
type Engine interface {
	Create(name string, cores []zapcore.Core) (Handle, error)
	Lookup(name string) (Handle, bool)
	Write(h Handle, level Level, loc Location, msg string) error
	Flush(h Handle) error
	ShutdownAll() error
}

// zapHandle wraps the registered zap logger.
type zapHandle struct {
	name   string
	logger *zap.Logger
}

// Name returns the registered logger name.
func (h *zapHandle) Name() string {
	return h.name
}

// zapEngine implements Engine on go.uber.org/zap with its own name registry,
// mirroring the engine-global registry the rest of the facility expects.
type zapEngine struct {
	mu      sync.Mutex
	loggers map[string]*zapHandle
}

// NewZapEngine returns the production engine.
func NewZapEngine() Engine {
	return &zapEngine{loggers: make(map[string]*zapHandle)}
}

// Create registers a named logger over the given sink cores.
func (e *zapEngine) Create(name string, cores []zapcore.Core) (Handle, error) {
	if name == "" {
		return nil, codes.E(codes.InvalidParameter, "empty logger name")
	}
	if len(cores) == 0 {
		return nil, codes.E(codes.AllocationFailed, "no sinks for logger %q", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.loggers[name]; exists {
		return nil, codes.E(codes.InvalidState, "logger %q already registered", name)
	}
	h := &zapHandle{
		name:   name,
		logger: zap.New(zapcore.NewTee(cores...)).Named(name),
	}
	e.loggers[name] = h
	return h, nil
}

// Lookup finds a previously registered logger by name.
func (e *zapEngine) Lookup(name string) (Handle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.loggers[name]
	if !ok {
		return nil, false
	}
	return h, true
}

// Write dispatches one record with its call-site attribution.
func (e *zapEngine) Write(h Handle, level Level, loc Location, msg string) error {
	zh, ok := h.(*zapHandle)
	if !ok || zh.logger == nil {
		return codes.E(codes.NotInitialized, "no engine logger behind handle")
	}

	ce := zh.logger.Check(level.zapLevel(), msg)
	if ce == nil {
		// Filtered by level.
		return nil
	}
	ce.Time = time.Now()
	if loc.File != "" {
		ce.Caller = zapcore.NewEntryCaller(0, loc.File, loc.Line, true)
		ce.Caller.Function = loc.Function
	}
	ce.Write()
	return nil
}

// Flush drains buffered output. Console syncers on some platforms refuse to
// sync; that is not a caller-visible failure.
func (e *zapEngine) Flush(h Handle) error {
	zh, ok := h.(*zapHandle)
	if !ok || zh.logger == nil {
		return codes.E(codes.NotInitialized, "no engine logger behind handle")
	}
	_ = zh.logger.Sync()
	return nil
}

// ShutdownAll drops every registration after a best-effort flush.
func (e *zapEngine) ShutdownAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, h := range e.loggers {
		_ = h.logger.Sync()
	}
	e.loggers = make(map[string]*zapHandle)
	return nil
}
