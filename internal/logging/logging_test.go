package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
	if !ValidLevel(" Info ") {
		t.Error("ValidLevel(Info) = false")
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelInfo, Output: &buf, NoColor: true})

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at info level: %q", buf.String())
	}

	l.SetLevel(slog.LevelDebug)
	if l.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v", l.Level())
	}
	Component(l.Logger, "router").Debug("shown", "widget", "ball")

	out := buf.String()
	for _, want := range []string{"shown", "component=router", "widget=ball"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
	Component(nil, "x").Info("nothing")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termweave.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	l := New(Options{Output: f, NoColor: true})
	l.Info("written")
}
