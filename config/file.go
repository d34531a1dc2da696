package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"vsnlog/codes"
)

// DefaultConfigFile is consulted when LoadFromFile is called with an empty
// path.
const DefaultConfigFile = "/etc/vsnlog.conf"

// LoadFromFile merges a configuration file into the store. Files ending in
// .yaml or .yml are parsed as YAML, everything else as INI with [section]
// headers, key=value lines and #/; comments. Malformed lines are skipped.
// Sections past the cap are dropped and reported as a resource error; entries
// accepted before the cap stay in place.
func (s *Store) LoadFromFile(path string) error {
	if path == "" {
		path = DefaultConfigFile
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return s.loadYAML(path)
	default:
		return s.loadINI(path)
	}
}

func (s *Store) loadINI(path string) error {
	f, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return codes.Wrap(codes.FileError, err, "open %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var capErr error
	for _, section := range f.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			// Keys above the first [section] header belong to global.
			name = GlobalSection
		}
		for _, key := range section.Keys() {
			if err := s.set(name, key.Name(), key.Value()); err != nil {
				if codes.Is(err, codes.ResourceUnavailable) {
					capErr = err
				}
				// Anything else is a malformed entry, skip it.
			}
		}
		// A header with no keys still claims a section slot.
		if len(section.Keys()) == 0 && name != GlobalSection {
			if err := s.ensureSection(name); err != nil {
				capErr = err
			}
		}
	}
	return capErr
}

func (s *Store) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return codes.Wrap(codes.FileError, err, "open %s", path)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return codes.Wrap(codes.ConfigError, err, "parse %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var capErr error
	for section, node := range doc {
		entries, ok := node.(map[string]any)
		if !ok {
			// Scalar at the top level reads as a global key.
			if err := s.set(GlobalSection, section, fmt.Sprint(node)); err != nil && codes.Is(err, codes.ResourceUnavailable) {
				capErr = err
			}
			continue
		}
		for key, value := range entries {
			if err := s.set(section, key, fmt.Sprint(value)); err != nil && codes.Is(err, codes.ResourceUnavailable) {
				capErr = err
			}
		}
	}
	return capErr
}

// ensureSection creates an empty section, honoring the section cap.
func (s *Store) ensureSection(name string) error {
	if _, ok := s.sections[name]; ok {
		return nil
	}
	if s.namedSectionCount() >= MaxSections {
		return codes.E(codes.ResourceUnavailable, "section cap (%d) reached, dropping [%s]", MaxSections, name)
	}
	s.sections[name] = make(map[string]string)
	s.order = append(s.order, name)
	return nil
}
