package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.log")
	logger, err := New(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("could not push state to history", zap.String("id", "p1"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["severity"] != "WARN" {
		t.Errorf("severity = %v, want WARN", entry["severity"])
	}
	if entry["id"] != "p1" {
		t.Errorf("id = %v, want p1", entry["id"])
	}
}

func TestLevelFallback(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		opts Options
		want zapcore.Level
	}{
		{Options{}, zapcore.InfoLevel},
		{Options{Level: "bogus"}, zapcore.InfoLevel},
		{Options{Level: "ERROR"}, zapcore.ErrorLevel},
		{Options{Level: "error", Verbose: true}, zapcore.DebugLevel},
	}
	for i, tt := range tests {
		tt.opts.File = filepath.Join(dir, "l"+string(rune('a'+i))+".log")
		logger, err := New(tt.opts)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.opts, err)
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("%+v: level %v should be enabled", tt.opts, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("%+v: level %v should be disabled", tt.opts, tt.want-1)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Error("OrNop should return the given logger")
	}
}
