package logger

import "testing"

func TestLevelOrdering(t *testing.T) {
	levels := []Level{Trace, Debug, Info, Warn, Error, Critical, Off}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("%v must sort below %v", levels[i-1], levels[i])
		}
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, l := range []Level{Trace, Debug, Info, Warn, Error, Critical, Off} {
		if got := ParseLevel(l.String()); got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
		}
	}
	if ParseLevel("nonsense") != Info {
		t.Error("unknown names default to info")
	}
	if ParseLevel("warning") != Warn {
		t.Error("'warning' is an accepted spelling")
	}
}

func TestLevelFromInt(t *testing.T) {
	if LevelFromInt(4) != Error {
		t.Error("numeric levels follow the documented scale")
	}
	if LevelFromInt(-3) != Info || LevelFromInt(99) != Info {
		t.Error("out-of-range integers default to info")
	}
}

func TestZapLevelOrderingPreserved(t *testing.T) {
	prev := Trace.zapLevel()
	for _, l := range []Level{Debug, Info, Warn, Error, Critical, Off} {
		cur := l.zapLevel()
		if cur <= prev {
			t.Errorf("%v does not sort above its predecessor on the engine scale", l)
		}
		prev = cur
	}
}
