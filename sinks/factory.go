package sinks

import (
	"log/syslog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"vsnlog/codes"
	"vsnlog/formatters"
)

const (
	// MaxAllocations caps the total sinks created over the factory's
	// lifetime. The counter is monotonic: releasing a sink frees its slot but
	// not its share of the cap. Only Shutdown resets it.
	MaxAllocations = 64
	// MaxSinksPerLogger bounds the sink set a single logger may hold; excess
	// requests are truncated, not rejected.
	MaxSinksPerLogger = 8

	// Rotation defaults applied when configuration stays silent.
	DefaultMaxFileSize = 10 * 1024 * 1024
	DefaultMaxFiles    = 5
)

// Factory creates bounded output destinations and accounts for them. Arena
// slots are generation-checked so a stale handle can never reach a reused
// descriptor.
type Factory struct {
	mu      sync.Mutex
	entries []entry
	nextGen uint32

	allocated atomic.Int32
	live      atomic.Int32

	level  zap.AtomicLevel
	format *Selector
}

type entry struct {
	desc       *Descriptor
	generation uint32
	live       bool
}

// NewFactory returns a factory whose sinks all share one atomic level and
// one pattern selector, so a later level or pattern change applies globally.
func NewFactory(level zap.AtomicLevel) *Factory {
	return &Factory{level: level, format: NewSelector(formatters.Default)}
}

// Level returns the shared atomic level.
func (f *Factory) Level() zap.AtomicLevel {
	return f.level
}

// SetFormat switches the pattern every existing and future sink renders
// with.
func (f *Factory) SetFormat(fm formatters.Format) {
	f.format.Set(fm)
}

// Format reports the active pattern.
func (f *Factory) Format() formatters.Format {
	return f.format.Get()
}

// NewConsole creates a stdout sink, colored or plain.
func (f *Factory) NewConsole(colored bool) (Handle, error) {
	kind := KindConsole
	if colored {
		kind = KindColoredConsole
	}
	core := newPatternCore(f.format, f.level, zapcore.Lock(os.Stdout), colored)
	return f.commit(&Descriptor{Kind: kind, Target: "stdout", core: core})
}

// NewFile creates a file sink, creating missing parent directories. With
// rotate set the file is size-rotated per maxSize/maxFiles; otherwise it is
// plain append. Construction failure yields an absent handle and leaves the
// allocation counter untouched.
func (f *Factory) NewFile(path string, rotate bool, maxSize, maxFiles int) (Handle, error) {
	if path == "" {
		return Handle{}, codes.E(codes.InvalidParameter, "empty file sink path")
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Handle{}, codes.Wrap(codes.PathCreationFailed, err, "create %s", dir)
		}
	}

	var syncer zapcore.WriteSyncer
	var closer func() error
	if rotate {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    bytesToMegabytes(maxSize),
			MaxBackups: maxFiles,
		}
		syncer = zapcore.AddSync(lj)
		closer = lj.Close
	} else {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			if os.IsPermission(err) {
				return Handle{}, codes.Wrap(codes.PermissionDenied, err, "open %s", path)
			}
			return Handle{}, codes.Wrap(codes.FileError, err, "open %s", path)
		}
		syncer = zapcore.Lock(file)
		closer = file.Close
	}

	core := newPatternCore(f.format, f.level, syncer, false)
	return f.commit(&Descriptor{Kind: KindFile, Target: path, core: core, closer: closer})
}

// NewSyslog creates a sink on the local syslog daemon. Records go out via
// the daemon's leveled methods so the priority tracks each record's
// severity. A daemon that cannot be reached yields an absent handle rather
// than an error escalation.
func (f *Factory) NewSyslog(tag string) (Handle, error) {
	if tag == "" {
		tag = "vsnlog"
	}
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_USER, tag)
	if err != nil {
		return Handle{}, codes.Wrap(codes.AllocationFailed, err, "connect syslog")
	}
	core := newSyslogCore(f.level, w)
	return f.commit(&Descriptor{Kind: KindSyslog, Target: tag, core: core, closer: w.Close})
}

// NewNull creates a discard sink.
func (f *Factory) NewNull() (Handle, error) {
	return f.commit(&Descriptor{Kind: KindNull, core: zapcore.NewNopCore()})
}

// MultiOptions selects the members of a composite sink set. An empty
// FilePath skips the file member; zero rotation bounds take the defaults.
type MultiOptions struct {
	Console     bool
	Colored     bool
	FilePath    string
	MaxFileSize int
	MaxFiles    int
	Syslog      bool
	SyslogTag   string
}

// NewMulti composes console, file and syslog sinks per the options, skipping
// members that fail to build and truncating to the per-logger bound. An
// empty combination falls back to a single console sink.
func (f *Factory) NewMulti(opts MultiOptions) []Handle {
	var handles []Handle

	if opts.Console {
		if h, err := f.NewConsole(opts.Colored); err == nil {
			handles = append(handles, h)
		}
	}
	if opts.FilePath != "" {
		if h, err := f.NewFile(opts.FilePath, true, opts.MaxFileSize, opts.MaxFiles); err == nil {
			handles = append(handles, h)
		}
	}
	if opts.Syslog {
		if h, err := f.NewSyslog(opts.SyslogTag); err == nil {
			handles = append(handles, h)
		}
	}

	if len(handles) == 0 {
		// Console is the last-resort sink when everything requested failed.
		if h, err := f.NewConsole(opts.Colored); err == nil {
			handles = append(handles, h)
		}
	}
	if len(handles) > MaxSinksPerLogger {
		handles = handles[:MaxSinksPerLogger]
	}
	return handles
}

// commit claims a cap slot and publishes the descriptor. Failure to claim
// closes whatever the constructor opened.
func (f *Factory) commit(desc *Descriptor) (Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.allocated.Load() >= MaxAllocations {
		if desc.closer != nil {
			_ = desc.closer()
		}
		return Handle{}, codes.E(codes.ResourceUnavailable, "sink allocation cap (%d) reached", MaxAllocations)
	}
	f.allocated.Add(1)
	f.live.Add(1)
	f.nextGen++

	desc.ID = uuid.NewString()
	f.entries = append(f.entries, entry{
		desc:       desc,
		generation: f.nextGen,
		live:       true,
	})
	return Handle{index: len(f.entries) - 1, generation: f.nextGen}, nil
}

// Get resolves a handle to its descriptor. Released or stale handles miss.
func (f *Factory) Get(h Handle) (*Descriptor, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h.index < 0 || h.index >= len(f.entries) {
		return nil, false
	}
	e := f.entries[h.index]
	if !e.live || e.generation != h.generation {
		return nil, false
	}
	return e.desc, true
}

// Cores collects the zap cores behind a handle set, skipping dead handles.
func (f *Factory) Cores(handles []Handle) []zapcore.Core {
	cores := make([]zapcore.Core, 0, len(handles))
	for _, h := range handles {
		if d, ok := f.Get(h); ok {
			cores = append(cores, d.Core())
		}
	}
	return cores
}

// Release drops a sink's liveness and closes its writer. The allocation
// counter is deliberately left alone: it is lifetime telemetry, and the cap
// keys off it until Shutdown.
func (f *Factory) Release(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h.index < 0 || h.index >= len(f.entries) {
		return
	}
	e := &f.entries[h.index]
	if !e.live || e.generation != h.generation {
		return
	}
	e.live = false
	if e.desc.closer != nil {
		_ = e.desc.closer()
	}
	f.live.Add(-1)
}

// AllocationCount reports the monotonic number of sinks ever created.
func (f *Factory) AllocationCount() int {
	return int(f.allocated.Load())
}

// LiveCount reports the number of sinks not yet released.
func (f *Factory) LiveCount() int {
	return int(f.live.Load())
}

// Shutdown closes every live sink and resets the arena and both counters.
func (f *Factory) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.entries {
		e := &f.entries[i]
		if e.live && e.desc.closer != nil {
			_ = e.desc.closer()
		}
		e.live = false
	}
	f.entries = nil
	f.allocated.Store(0)
	f.live.Store(0)
}

// bytesToMegabytes converts the configured byte bound to lumberjack's
// megabyte unit, rounding up so a small bound still rotates.
func bytesToMegabytes(n int) int {
	mb := n / (1024 * 1024)
	if n%(1024*1024) != 0 || mb == 0 {
		mb++
	}
	return mb
}
