package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type reload struct {
	cfg *Config
	err error
}

func watchFile(t *testing.T, initial string) (string, chan reload) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termweave.yaml")
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatal(err)
	}

	ch := make(chan reload, 8)
	w, err := Watch(path, func(cfg *Config, err error) {
		ch <- reload{cfg, err}
	}, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return path, ch
}

func waitReload(t *testing.T, ch chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return reload{}
	}
}

func TestWatchReloads(t *testing.T) {
	path, ch := watchFile(t, "log_level: info\n")

	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := waitReload(t, ch)
	if r.err != nil {
		t.Fatalf("reload error: %v", r.err)
	}
	if r.cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", r.cfg.LogLevel)
	}
}

func TestWatchReportsInvalid(t *testing.T) {
	path, ch := watchFile(t, "log_level: info\n")

	if err := os.WriteFile(path, []byte("log_level: shouting\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := waitReload(t, ch)
	if r.cfg != nil {
		t.Errorf("invalid reload should not produce a config, got %+v", r.cfg)
	}
	if !errors.Is(r.err, ErrInvalidConfig) {
		t.Errorf("reload error = %v, want ErrInvalidConfig", r.err)
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	path, ch := watchFile(t, "log_level: info\n")

	other := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-ch:
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatchUnsupported(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "x.ini"), nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Watch() = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termweave.toml")
	w, err := Watch(path, nil)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	_ = w.Close()
}
