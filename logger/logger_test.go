package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("viewer.log")
	if cfg.Path != "viewer.log" {
		t.Errorf("expected path viewer.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("expected max size 50, got %d", cfg.MaxSizeMB)
	}
	if !cfg.Compress {
		t.Error("expected compression to be enabled by default")
	}
}

func TestFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "meshview.log")

	log := NewWithFileConfig("debug", DefaultFileConfig(logPath), false)
	log.Info("mesh loaded", zap.String("path", "models/bunny.obj"))
	log.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "mesh loaded") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "meshview.log")

	log := NewWithFileConfig("warn", DefaultFileConfig(logPath), false)
	log.Debug("should be filtered")
	log.Warn("should appear")
	log.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "should be filtered") {
		t.Error("debug message leaked through warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing from output")
	}
}
