package logging

import (
	"os"
	"strings"
	"testing"
)

func TestSetupCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := Setup(dir, false, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer func() { _ = logger.Close() }()

	if logger.FilePath() == "" {
		t.Fatal("FilePath() is empty")
	}
	if logger.RunID() == "" {
		t.Fatal("RunID() is empty")
	}

	logger.Info("converted %s", "movie1.mp4")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logger.FilePath())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "converted movie1.mp4") {
		t.Errorf("log file missing message: %s", content)
	}
	if !strings.Contains(content, logger.RunID()) {
		t.Error("log file missing run_id field")
	}
}

func TestSetupNoLog(t *testing.T) {
	logger, err := Setup(t.TempDir(), false, true)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if logger != nil {
		t.Fatal("Setup() with noLog should return nil logger")
	}

	// A nil logger must be safe to use.
	logger.Info("ignored")
	logger.Debug("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger error = %v", err)
	}
	if logger.FilePath() != "" || logger.RunID() != "" {
		t.Error("nil logger should report empty path and run ID")
	}
}

func TestDebugSuppressedWithoutVerbose(t *testing.T) {
	dir := t.TempDir()

	logger, err := Setup(dir, false, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Debug("hidden detail")
	_ = logger.Close()

	data, _ := os.ReadFile(logger.FilePath())
	if strings.Contains(string(data), "hidden detail") {
		t.Error("debug message written without verbose mode")
	}
}

func TestDebugWrittenWithVerbose(t *testing.T) {
	dir := t.TempDir()

	logger, err := Setup(dir, true, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Debug("visible detail")
	_ = logger.Close()

	data, _ := os.ReadFile(logger.FilePath())
	if !strings.Contains(string(data), "visible detail") {
		t.Error("debug message missing in verbose mode")
	}
}
