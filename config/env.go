package config

import (
	"os"
	"strings"

	"vsnlog/codes"
)

// EnvPrefix heads every recognized environment variable.
const EnvPrefix = "VSNLOG_"

// envSections are the recognized section selectors.
var envSections = []string{"GLOBAL", "APP"}

// envOptions are the recognized option suffixes. Variables are spelled
// VSNLOG_<SECTION>_<OPTION>, e.g. VSNLOG_GLOBAL_LOG_DIR or
// VSNLOG_APP_CONSOLE_OUTPUT.
var envOptions = []string{
	"LOG_LEVEL",
	"LOG_DIR",
	"FORMAT",
	"FILE_PATH",
	"MAX_SIZE",
	"MAX_FILES",
	"CONSOLE_OUTPUT",
	"FILE_OUTPUT",
	"SYSLOG_OUTPUT",
	"USE_COLORS",
}

// LoadFromEnv scans the recognized environment variables and merges any that
// are set into the store, lower-casing section and key. It reports
// NotInitialized when nothing was found, which callers treat as advisory.
func (s *Store) LoadFromEnv() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, section := range envSections {
		for _, option := range envOptions {
			value, ok := os.LookupEnv(EnvPrefix + section + "_" + option)
			if !ok {
				continue
			}
			if err := s.set(strings.ToLower(section), strings.ToLower(option), value); err != nil {
				continue
			}
			found = true
		}
	}
	if !found {
		return codes.E(codes.NotInitialized, "no %s* variables set", EnvPrefix)
	}
	return nil
}
