package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOutput(tt.verbosity, &bytes.Buffer{})

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "simenv", "simenv.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestConsoleOutputGoesToWriter(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)
	logger := GetLogger("compose")
	logger.Info().Msg("composed environment")

	out := buf.String()
	if !strings.Contains(out, "composed environment") {
		t.Errorf("console output missing message: %q", out)
	}
	if !strings.Contains(out, "component=compose") {
		t.Errorf("console output missing component field: %q", out)
	}
}

func TestSetupReplacesLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(func() { _ = Close() })

	SetupLoggerWithOutput(0, &bytes.Buffer{})
	first := logFile
	if first == nil {
		t.Fatal("first setup did not open a log file")
	}

	var buf bytes.Buffer
	SetupLoggerWithOutput(0, &buf)
	if logFile == first {
		t.Fatal("second setup reused the first handle")
	}
	if _, err := first.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("first handle still open after second setup: %v", err)
	}

	if err := Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if logFile != nil {
		t.Error("Close() left the handle in place")
	}
	if err := Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	// the console keeps working once the file is gone
	logger := GetLogger("compose")
	logger.Warn().Msg("after close")
	if !strings.Contains(buf.String(), "after close") {
		t.Errorf("console output missing message after Close: %q", buf.String())
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		got := filepath.ToSlash(getLogFilePath())
		if got != "/custom/state/simenv/simenv.log" {
			t.Errorf("getLogFilePath() = %s", got)
		}
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := filepath.ToSlash(getLogFilePath())
		if !strings.HasSuffix(got, ".local/state/simenv/simenv.log") {
			t.Errorf("getLogFilePath() = %s", got)
		}
	})
}
