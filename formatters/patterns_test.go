package formatters

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, f := range []Format{JSON, Console, Simple, Minimal, Colored, Detailed, Default} {
		if got := Parse(f.String()); got != f {
			t.Errorf("Parse(%q) = %v, want %v", f.String(), got, f)
		}
	}
}

func TestUnknownNameFallsBackToDefault(t *testing.T) {
	if GetPattern("unknown-name") != GetPattern("default") {
		t.Error("unknown name must resolve to the default pattern")
	}
	if Parse("XML") != Default {
		t.Error("unknown format must parse to Default")
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	if Parse("  JSON ") != JSON {
		t.Error("surrounding whitespace and case must not matter")
	}
}

func TestPatternsAreDistinct(t *testing.T) {
	seen := map[string]Format{}
	for _, f := range []Format{JSON, Console, Simple, Minimal, Colored, Detailed} {
		p := f.Pattern()
		if p == "" {
			t.Errorf("%v has empty pattern", f)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("%v and %v share a pattern", prev, f)
		}
		seen[p] = f
	}
}
