package input

import (
	"testing"
	"time"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "Enter"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestModifier(t *testing.T) {
	if ModShift != 1 || ModCtrl != 2 || ModAlt != 4 || ModMeta != 8 {
		t.Fatalf("unexpected modifier bits: %d %d %d %d", ModShift, ModCtrl, ModAlt, ModMeta)
	}
	m := ModNone.With(ModCtrl).With(ModShift)
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q", got)
	}
	if !ModNone.IsEmpty() || m.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestKeyEventString(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Key: KeyRune, Rune: 'a'}, "a"},
		{KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}, "Ctrl+c"},
		{KeyEvent{Key: KeyUp}, "Up"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClickTracker(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewClickTracker(DefaultClickInterval, DefaultClickDistance)

	steps := []struct {
		name     string
		row, col int
		button   Button
		offset   time.Duration
		want     int
	}{
		{"first", 5, 5, ButtonLeft, 0, 1},
		{"double", 5, 6, ButtonLeft, 100 * time.Millisecond, 2},
		{"triple", 5, 6, ButtonLeft, 200 * time.Millisecond, 3},
		{"wraps", 5, 6, ButtonLeft, 300 * time.Millisecond, 1},
		{"too slow", 5, 6, ButtonLeft, 900 * time.Millisecond, 1},
		{"too far", 9, 9, ButtonLeft, 1000 * time.Millisecond, 1},
		{"other button", 9, 9, ButtonRight, 1100 * time.Millisecond, 1},
		{"clock skew", 9, 9, ButtonRight, 0, 1},
	}
	for _, s := range steps {
		if got := tr.Record(s.row, s.col, s.button, base.Add(s.offset)); got != s.want {
			t.Errorf("%s: Record() = %d, want %d", s.name, got, s.want)
		}
	}
}

func TestClickTrackerStamp(t *testing.T) {
	now := time.Now()
	tr := NewClickTracker(DefaultClickInterval, DefaultClickDistance)

	press := MouseEvent{Row: 1, Col: 1, Button: ButtonLeft, Action: ActionPress}
	if ev := tr.Stamp(press, now); ev.Clicks != 1 {
		t.Errorf("first press Clicks = %d", ev.Clicks)
	}
	if ev := tr.Stamp(press, now.Add(time.Millisecond)); ev.Clicks != 2 {
		t.Errorf("second press Clicks = %d", ev.Clicks)
	}

	release := MouseEvent{Row: 1, Col: 1, Button: ButtonLeft, Action: ActionRelease}
	if ev := tr.Stamp(release, now); ev.Clicks != 0 {
		t.Errorf("release Clicks = %d, want 0", ev.Clicks)
	}

	tr.Reset()
	if ev := tr.Stamp(press, now.Add(2*time.Millisecond)); ev.Clicks != 1 {
		t.Errorf("after Reset Clicks = %d, want 1", ev.Clicks)
	}
}
