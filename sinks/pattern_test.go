package sinks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"vsnlog/formatters"
)

func writeRecord(t *testing.T, f *Factory, h Handle, msg string) {
	t.Helper()
	d, ok := f.Get(h)
	if !ok {
		t.Fatal("handle does not resolve")
	}
	ent := zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: msg}
	if err := d.Core().Write(ent, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFileSinkFollowsActivePattern(t *testing.T) {
	f := newTestFactory()
	path := filepath.Join(t.TempDir(), "svc", "svc.log")
	h, err := f.NewFile(path, true, DefaultMaxFileSize, DefaultMaxFiles)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	// The same sink renders differently as the active pattern changes.
	f.SetFormat(formatters.JSON)
	writeRecord(t, f, h, "as json")
	f.SetFormat(formatters.Minimal)
	writeRecord(t, f, h, "as minimal")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("json pattern line does not parse: %v\n%s", err, lines[0])
	}
	if record["msg"] != "as json" || record["level"] != "INFO" {
		t.Errorf("json record = %v", record)
	}

	if strings.HasPrefix(lines[1], "{") {
		t.Errorf("minimal pattern still renders json: %s", lines[1])
	}
	if !strings.Contains(lines[1], "INFO") || !strings.Contains(lines[1], "as minimal") {
		t.Errorf("minimal line = %q", lines[1])
	}
	if strings.Contains(lines[1], time.Now().UTC().Format("2006")) {
		t.Errorf("minimal pattern must drop the timestamp: %s", lines[1])
	}
}

func TestFileSinkNeverEmitsColorCodes(t *testing.T) {
	f := newTestFactory()
	path := filepath.Join(t.TempDir(), "svc.log")
	h, err := f.NewFile(path, true, DefaultMaxFileSize, DefaultMaxFiles)
	if err != nil {
		t.Fatal(err)
	}
	f.SetFormat(formatters.Colored)
	writeRecord(t, f, h, "plain in files")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\033[") {
		t.Errorf("ANSI sequence in file output: %q", data)
	}
}

func TestSelectorClampsOutOfRange(t *testing.T) {
	s := NewSelector(formatters.Format(99))
	if s.Get() != formatters.Default {
		t.Errorf("out-of-range start = %v", s.Get())
	}
	s.Set(formatters.Colored)
	if s.Get() != formatters.Colored {
		t.Errorf("Get = %v", s.Get())
	}
}
