package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })
}

func TestGlobal_DefaultsToNoop(t *testing.T) {
	resetGlobal(t)

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	logger.Info("discarded")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal(t)

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug, false)
	SetGlobal(logger)

	if Global() != logger {
		t.Fatal("Global() should return the logger set by SetGlobal()")
	}

	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")
	With("component", "offers").Info("scoped line")

	out := buf.String()
	for _, want := range []string{"debug line", "info line", "warn line", "error line", "component=offers"} {
		if !strings.Contains(out, want) {
			t.Errorf("global output missing %q:\n%s", want, out)
		}
	}
}

func TestInitGlobalAndClose(t *testing.T) {
	resetGlobal(t)

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	path := Global().LogPath()
	Info("hello from global")

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(content), "hello from global") {
		t.Errorf("log file missing message: %s", content)
	}

	// After closing, Global falls back to a usable no-op logger.
	if Global() == nil {
		t.Error("Global() returned nil after CloseGlobal")
	}
}

func TestCloseGlobalWhenNil(t *testing.T) {
	resetGlobal(t)
	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() with nil logger error = %v", err)
	}
}
