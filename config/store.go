package config

import (
	"strconv"
	"strings"
	"sync"

	"vsnlog/codes"
)

// Capacity bounds for the configuration table. Oversized keys and values are
// truncated rather than rejected; section and entry counts are hard caps.
const (
	MaxSections          = 32
	MaxEntriesPerSection = 64
	MaxKeyLength         = 64
	MaxValueLength       = 256
	// GlobalSection is always present and acts as the lookup fallback for
	// every other section.
	GlobalSection = "global"
)

// Store is a bounded section/key/value table loaded from a file and/or
// environment variables. A single lock guards every operation; the table is
// written during startup and read afterwards, so coarse locking wins over
// anything cleverer.
type Store struct {
	mu       sync.Mutex
	sections map[string]map[string]string
	order    []string
}

// New returns an empty store containing only the global section.
func New() *Store {
	return &Store{
		sections: map[string]map[string]string{
			GlobalSection: {},
		},
		order: []string{GlobalSection},
	}
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide store, constructing it on first use.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// Set stores a value, creating the section on demand. Keys and values beyond
// the length bounds are truncated. The section and per-section entry caps
// yield a resource error and leave the table untouched.
func (s *Store) Set(section, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(section, key, value)
}

// set is the lock-free insert used by Set and the loaders.
func (s *Store) set(section, key, value string) error {
	section = strings.TrimSpace(section)
	key = truncate(strings.TrimSpace(key), MaxKeyLength)
	value = truncate(strings.TrimSpace(value), MaxValueLength)
	if section == "" || key == "" {
		return codes.E(codes.InvalidParameter, "empty section or key")
	}

	entries, ok := s.sections[section]
	if !ok {
		if s.namedSectionCount() >= MaxSections {
			return codes.E(codes.ResourceUnavailable, "section cap (%d) reached, dropping [%s]", MaxSections, section)
		}
		entries = make(map[string]string)
		s.sections[section] = entries
		s.order = append(s.order, section)
	}
	if _, exists := entries[key]; !exists && len(entries) >= MaxEntriesPerSection {
		return codes.E(codes.ResourceUnavailable, "entry cap (%d) reached in [%s]", MaxEntriesPerSection, section)
	}
	entries[key] = value
	return nil
}

// namedSectionCount counts sections excluding the built-in global one, which
// exists from construction and never competes for the cap.
func (s *Store) namedSectionCount() int {
	n := len(s.sections)
	if _, ok := s.sections[GlobalSection]; ok {
		n--
	}
	return n
}

// GetString looks up a value in the given section, falling back first to the
// global section and then to the supplied default.
func (s *Store) GetString(section, key, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries, ok := s.sections[section]; ok {
		if v, ok := entries[key]; ok {
			return v
		}
	}
	if section != GlobalSection {
		if v, ok := s.sections[GlobalSection][key]; ok {
			return v
		}
	}
	return def
}

// GetInt looks up an integer value. Parse failures fall back to the default.
func (s *Store) GetInt(section, key string, def int) int {
	v := s.GetString(section, key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool looks up a boolean value. Recognized truthy spellings are "true",
// "yes", "1" and "on"; anything else present is false, absence falls back to
// the default.
func (s *Store) GetBool(section, key string, def bool) bool {
	v := s.GetString(section, key, "")
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}

// Sections returns the section names in insertion order.
func (s *Store) Sections() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether the section holds the key, without global fallback.
func (s *Store) Has(section, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.sections[section]
	if !ok {
		return false
	}
	_, ok = entries[key]
	return ok
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
