package config

import (
	"os"
	"testing"

	"vsnlog/codes"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VSNLOG_GLOBAL_LOG_DIR", "/data/logs")
	t.Setenv("VSNLOG_GLOBAL_LOG_LEVEL", "1")
	t.Setenv("VSNLOG_APP_CONSOLE_OUTPUT", "false")
	t.Setenv("VSNLOG_APP_FORMAT", "json")

	s := New()
	if err := s.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	// Section and key are lower-cased.
	if got := s.GetString("global", "log_dir", ""); got != "/data/logs" {
		t.Errorf("log_dir = %q", got)
	}
	if got := s.GetInt("global", "log_level", 9); got != 1 {
		t.Errorf("log_level = %d", got)
	}
	if s.GetBool("app", "console_output", true) {
		t.Error("console_output should be false")
	}
	if got := s.GetString("app", "format", ""); got != "json" {
		t.Errorf("format = %q", got)
	}
}

func TestLoadFromEnvNothingSet(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv leaves the variable absent for
	// the duration of the test.
	for _, section := range envSections {
		for _, option := range envOptions {
			name := EnvPrefix + section + "_" + option
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}

	s := New()
	if err := s.LoadFromEnv(); !codes.Is(err, codes.NotInitialized) {
		t.Fatalf("expected NotInitialized, got %v", err)
	}
}
