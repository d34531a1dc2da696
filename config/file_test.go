package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vsnlog/codes"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFileINI(t *testing.T) {
	path := writeFile(t, "vsnlog.conf", `
# comment line
; also a comment
log_dir = /var/log

[myapp]
console_output = true
log_level=2
  max_files  =  3

this line is malformed and skipped
`)
	s := New()
	if err := s.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := s.GetString("global", "log_dir", ""); got != "/var/log" {
		t.Errorf("pre-section key should land in global, got %q", got)
	}
	if !s.GetBool("myapp", "console_output", false) {
		t.Error("console_output lost")
	}
	if got := s.GetInt("myapp", "log_level", 0); got != 2 {
		t.Errorf("log_level = %d, want 2", got)
	}
	if got := s.GetInt("myapp", "max_files", 0); got != 3 {
		t.Errorf("whitespace around key/value must be trimmed, got %d", got)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	s := New()
	err := s.LoadFromFile(filepath.Join(t.TempDir(), "absent.conf"))
	if !codes.Is(err, codes.FileError) {
		t.Fatalf("expected FileError, got %v", err)
	}
}

func TestLoadFromFileSectionCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxSections+1; i++ {
		fmt.Fprintf(&b, "[section%02d]\nkey = value%d\n", i, i)
	}
	path := writeFile(t, "many.conf", b.String())

	s := New()
	err := s.LoadFromFile(path)
	if !codes.Is(err, codes.ResourceUnavailable) {
		t.Fatalf("expected ResourceUnavailable, got %v", err)
	}
	// Exactly the first MaxSections survive.
	for i := 0; i < MaxSections; i++ {
		name := fmt.Sprintf("section%02d", i)
		if got := s.GetString(name, "key", ""); got != fmt.Sprintf("value%d", i) {
			t.Errorf("accepted section %s lost: %q", name, got)
		}
	}
	if s.Has(fmt.Sprintf("section%02d", MaxSections), "key") {
		t.Error("section past the cap must be dropped")
	}
}

func TestLoadFromFileValueTruncation(t *testing.T) {
	long := strings.Repeat("x", MaxValueLength+50)
	path := writeFile(t, "long.conf", "[app]\nbanner = "+long+"\n")
	s := New()
	if err := s.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := s.GetString("app", "banner", ""); len(got) != MaxValueLength {
		t.Errorf("value length = %d, want %d", len(got), MaxValueLength)
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "vsnlog.yaml", `
log_dir: /srv/logs
myapp:
  console_output: true
  max_file_size: 1048576
`)
	s := New()
	if err := s.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := s.GetString("global", "log_dir", ""); got != "/srv/logs" {
		t.Errorf("top-level scalar should land in global, got %q", got)
	}
	if !s.GetBool("myapp", "console_output", false) {
		t.Error("console_output lost")
	}
	if got := s.GetInt("myapp", "max_file_size", 0); got != 1048576 {
		t.Errorf("max_file_size = %d", got)
	}
}

func TestLoadFromFileYAMLMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "::\n\t- not yaml")
	s := New()
	if err := s.LoadFromFile(path); !codes.Is(err, codes.ConfigError) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}
