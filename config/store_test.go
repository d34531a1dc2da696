package config

import (
	"fmt"
	"strings"
	"testing"

	"vsnlog/codes"
)

func TestGlobalFallback(t *testing.T) {
	s := New()
	if err := s.Set("global", "log_dir", "/var/log"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("myapp", "log_level", "3"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := s.GetString("myapp", "log_level", "0"); got != "3" {
		t.Errorf("section value = %q, want %q", got, "3")
	}
	if got := s.GetString("myapp", "log_dir", "/tmp"); got != "/var/log" {
		t.Errorf("global fallback = %q, want %q", got, "/var/log")
	}
	if got := s.GetString("myapp", "missing", "fallback"); got != "fallback" {
		t.Errorf("default fallback = %q, want %q", got, "fallback")
	}
}

func TestTruncation(t *testing.T) {
	s := New()
	longKey := strings.Repeat("k", MaxKeyLength+10)
	longValue := strings.Repeat("v", MaxValueLength+100)
	if err := s.Set("app", longKey, longValue); err != nil {
		t.Fatalf("oversized input must be truncated, not rejected: %v", err)
	}
	got := s.GetString("app", longKey[:MaxKeyLength], "")
	if len(got) != MaxValueLength {
		t.Errorf("stored value length = %d, want %d", len(got), MaxValueLength)
	}
}

func TestSectionCap(t *testing.T) {
	s := New()
	for i := 0; i < MaxSections; i++ {
		if err := s.Set(fmt.Sprintf("section%02d", i), "key", "value"); err != nil {
			t.Fatalf("section %d rejected below cap: %v", i, err)
		}
	}
	err := s.Set("onetoomany", "key", "value")
	if !codes.Is(err, codes.ResourceUnavailable) {
		t.Fatalf("expected ResourceUnavailable past the cap, got %v", err)
	}
	// Prior entries stay intact, and global never competes for the cap.
	if got := s.GetString("section00", "key", ""); got != "value" {
		t.Errorf("prior entry lost: %q", got)
	}
	if err := s.Set("global", "still", "writable"); err != nil {
		t.Errorf("global must stay writable: %v", err)
	}
}

func TestEntryCap(t *testing.T) {
	s := New()
	for i := 0; i < MaxEntriesPerSection; i++ {
		if err := s.Set("app", fmt.Sprintf("key%02d", i), "v"); err != nil {
			t.Fatalf("entry %d rejected below cap: %v", i, err)
		}
	}
	if err := s.Set("app", "overflow", "v"); !codes.Is(err, codes.ResourceUnavailable) {
		t.Fatalf("expected ResourceUnavailable, got %v", err)
	}
	// Overwriting an existing key is not a new entry.
	if err := s.Set("app", "key00", "updated"); err != nil {
		t.Errorf("overwrite rejected: %v", err)
	}
}

func TestTypedGetters(t *testing.T) {
	s := New()
	s.Set("app", "max_files", "7")
	s.Set("app", "bad_int", "not-a-number")
	s.Set("app", "console", "yes")
	s.Set("app", "syslog", "off")

	if got := s.GetInt("app", "max_files", 5); got != 7 {
		t.Errorf("GetInt = %d, want 7", got)
	}
	if got := s.GetInt("app", "bad_int", 5); got != 5 {
		t.Errorf("parse failure must fall back, got %d", got)
	}
	if got := s.GetInt("app", "absent", 42); got != 42 {
		t.Errorf("absent int must fall back, got %d", got)
	}
	if !s.GetBool("app", "console", false) {
		t.Error("'yes' should parse true")
	}
	if s.GetBool("app", "syslog", true) {
		t.Error("'off' should parse false")
	}
	if !s.GetBool("app", "absent", true) {
		t.Error("absent bool must fall back")
	}
}

func TestInvalidSet(t *testing.T) {
	s := New()
	if err := s.Set("", "key", "v"); !codes.Is(err, codes.InvalidParameter) {
		t.Errorf("empty section: got %v", err)
	}
	if err := s.Set("app", "", "v"); !codes.Is(err, codes.InvalidParameter) {
		t.Errorf("empty key: got %v", err)
	}
}

func TestDefaultStoreIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same store")
	}
}
