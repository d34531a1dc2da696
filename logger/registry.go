package logger

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vsnlog/codes"
	"vsnlog/config"
	"vsnlog/formatters"
	"vsnlog/sinks"
)

// MaxLogPathLength bounds the computed log-file path.
const MaxLogPathLength = 255

// DefaultLogDir is used when neither arguments nor configuration name one.
const DefaultLogDir = "/var/log"

// registry lifecycle states.
type state int

const (
	stateUninitialized state = iota
	stateInitializing
	stateReady
)

// Registry owns the default logger and resolves configuration into concrete
// sink sets. One lock guards its state; configuration reads complete before
// the lock is taken, so the store's lock and the registry's never nest.
type Registry struct {
	mu        sync.Mutex
	state     state
	store     *config.Store
	engine    Engine
	level     zap.AtomicLevel
	factory   *sinks.Factory
	def       *Logger
	emergency *Logger
	pattern   string
	loggers   int
}

// NewRegistry builds a registry over the given store and engine. Nil
// arguments select the process-wide store and the zap engine.
func NewRegistry(store *config.Store, engine Engine) *Registry {
	if store == nil {
		store = config.Default()
	}
	if engine == nil {
		engine = NewZapEngine()
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &Registry{
		store:   store,
		engine:  engine,
		level:   level,
		factory: sinks.NewFactory(level),
		pattern: formatters.GetPattern("default"),
	}
}

// Factory exposes the sink factory for telemetry.
func (r *Registry) Factory() *sinks.Factory {
	return r.factory
}

// Store exposes the configuration store the registry resolves against.
func (r *Registry) Store() *config.Store {
	return r.store
}

// settings is the merged view of explicit arguments and store overrides.
type settings struct {
	logDir      string
	console     bool
	file        bool
	syslog      bool
	patternName string
	colors      bool
	maxFileSize int
	maxFiles    int
	level       Level
}

// resolve merges configuration over the explicit defaults. All store reads
// happen here, before the registry lock is acquired.
func (r *Registry) resolve(appName, logDir string, level Level) settings {
	return settings{
		logDir:      r.store.GetString(config.GlobalSection, "log_dir", logDir),
		console:     r.store.GetBool(appName, "console_output", true),
		file:        r.store.GetBool(appName, "file_output", true),
		syslog:      r.store.GetBool(appName, "syslog_output", false),
		patternName: r.store.GetString(appName, "log_pattern", "colored"),
		colors:      r.store.GetBool(appName, "use_colors", true),
		maxFileSize: r.store.GetInt(appName, "max_file_size", sinks.DefaultMaxFileSize),
		maxFiles:    r.store.GetInt(appName, "max_files", sinks.DefaultMaxFiles),
		level:       LevelFromInt(r.store.GetInt(appName, "log_level", int(level))),
	}
}

// Initialize constructs (or reuses) the named logger and promotes it to
// default. Explicit arguments are defaults; store values addressed by the
// application name override them. Initialization is idempotent per name.
func (r *Registry) Initialize(appName, logDir string, level Level) error {
	opts := Options{AppName: appName, LogDir: logDir, Level: level}
	if err := opts.check(); err != nil {
		return err
	}

	// Environment overrides are merged on every initialization, then the
	// effective settings are fixed before locking.
	if err := r.store.LoadFromEnv(); err != nil && !codes.Is(err, codes.NotInitialized) {
		return err
	}
	cfg := r.resolve(appName, logDir, level)

	var logPath string
	if cfg.file {
		logPath = filepath.Join(cfg.logDir, appName, appName+".log")
		if len(logPath) > MaxLogPathLength {
			return codes.E(codes.InvalidParameter, "log path exceeds %d characters", MaxLogPathLength)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.state
	r.state = stateInitializing

	if h, ok := r.engine.Lookup(appName); ok {
		// Reuse the existing registration; no new sinks are allocated.
		r.def = &Logger{name: appName, engine: r.engine, handle: h}
		r.finish(cfg, appName)
		return nil
	}

	handles := r.factory.NewMulti(sinks.MultiOptions{
		Console:     cfg.console,
		Colored:     cfg.colors,
		FilePath:    logPath,
		MaxFileSize: cfg.maxFileSize,
		MaxFiles:    cfg.maxFiles,
		Syslog:      cfg.syslog,
		SyslogTag:   appName,
	})

	h, err := r.engine.Create(appName, r.factory.Cores(handles))
	if err != nil {
		// Partial state stays inspectable; sinks created above are not
		// rolled back, but the lifecycle state reverts.
		r.state = prev
		return codes.Wrap(codes.AllocationFailed, err, "engine refused logger %q", appName)
	}
	r.def = &Logger{name: appName, engine: r.engine, handle: h, sinks: handles}
	r.loggers++
	r.finish(cfg, appName)
	return nil
}

// finish applies pattern and level, emits the bootstrap record and marks the
// registry ready. Caller holds the lock.
func (r *Registry) finish(cfg settings, appName string) {
	r.pattern = formatters.GetPattern(cfg.patternName)
	r.factory.SetFormat(formatters.Parse(cfg.patternName))
	r.level.SetLevel(cfg.level.zapLevel())
	r.state = stateReady
	_ = r.def.Info(Here(1), "logging initialized for application: %s", appName)
}

// InitializeWithConfig loads file configuration, merges environment
// overrides, and initializes from the resolved global section. A missing or
// unreadable file degrades to compiled-in defaults with a warning.
func (r *Registry) InitializeWithConfig(appName, configFile string) error {
	if err := r.store.LoadFromFile(configFile); err != nil {
		_ = r.Default().Warn(Here(0), "config file unusable, using defaults: %v", err)
	}
	if err := r.store.LoadFromEnv(); err != nil && !codes.Is(err, codes.NotInitialized) {
		return err
	}

	logDir := r.store.GetString(config.GlobalSection, "log_dir", DefaultLogDir)
	level := LevelFromInt(r.store.GetInt(config.GlobalSection, "log_level", int(Info)))
	return r.Initialize(appName, logDir, level)
}

// Default returns the default logger, lazily creating a minimal console
// logger when Initialize was never called. If even that fails it falls back
// to a separately named emergency logger that is never created lazily again.
func (r *Registry) Default() *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.def != nil {
		return r.def
	}

	h, ok := r.engine.Lookup("default")
	if !ok {
		var handles []sinks.Handle
		if sh, err := r.factory.NewConsole(true); err == nil {
			handles = append(handles, sh)
		}
		created, err := r.engine.Create("default", r.factory.Cores(handles))
		if err != nil {
			return r.emergencyLogger()
		}
		h = created
		r.def = &Logger{name: "default", engine: r.engine, handle: h, sinks: handles}
		r.loggers++
	} else {
		r.def = &Logger{name: "default", engine: r.engine, handle: h}
	}
	_ = r.def.Warn(Here(1), "using uninitialized default logger; call Initialize first")
	return r.def
}

// emergencyLogger builds the non-recursive fallback. Caller holds the lock.
func (r *Registry) emergencyLogger() *Logger {
	if r.emergency != nil {
		return r.emergency
	}
	h, err := r.engine.Create("vsnlog-emergency", []zapcore.Core{sinks.EmergencyCore()})
	if err != nil {
		if existing, ok := r.engine.Lookup("vsnlog-emergency"); ok {
			h = existing
		}
	}
	r.emergency = &Logger{name: "vsnlog-emergency", engine: r.engine, handle: h}
	return r.emergency
}

// SetLevel changes the global severity threshold for every sink.
func (r *Registry) SetLevel(level Level) {
	r.level.SetLevel(level.zapLevel())
}

// SetPattern resolves a pattern name and switches the layout of every sink,
// existing ones included. Unknown names fall back to the default pattern.
func (r *Registry) SetPattern(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pattern = formatters.GetPattern(name)
	r.factory.SetFormat(formatters.Parse(name))
}

// Pattern returns the active pattern template.
func (r *Registry) Pattern() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pattern
}

// Flush drains the default logger.
func (r *Registry) Flush() error {
	r.mu.Lock()
	def := r.def
	r.mu.Unlock()

	if def == nil || def.handle == nil {
		return codes.E(codes.NotInitialized, "no default logger")
	}
	return def.Flush()
}

// Shutdown releases engine registrations and sinks and returns the registry
// to its uninitialized state.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.engine.ShutdownAll()
	r.factory.Shutdown()
	r.def = nil
	r.emergency = nil
	r.loggers = 0
	r.state = stateUninitialized
	return err
}

// Ready reports whether a successful Initialize currently backs the default
// logger. The lazy default and the emergency fallback never mark the
// registry ready.
func (r *Registry) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == stateReady
}

// Loggers reports how many loggers this registry has created.
func (r *Registry) Loggers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loggers
}
