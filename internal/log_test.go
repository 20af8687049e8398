package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_TimestampedLines(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "fixturegen.log")

	logger, err := NewLogger(logPath)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Log("file event: %d %s", 0, "/out/IMG_001.jpg")
	logger.Log("watcher error: %v", os.ErrClosed)
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %q", len(lines), lines)
	}

	for i, line := range lines {
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			t.Fatalf("Line %d has no timestamp prefix: %q", i, line)
		}
		if _, err := time.Parse(time.RFC3339, fields[0]); err != nil {
			t.Errorf("Line %d timestamp not RFC3339: %q (%v)", i, fields[0], err)
		}
	}

	if !strings.HasSuffix(lines[0], "file event: 0 /out/IMG_001.jpg") {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
}

func TestLogger_AppendsAcrossReopens(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "fixturegen.log")

	first, err := NewLogger(logPath)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	first.Log("run one")
	first.Close()

	second, err := NewLogger(logPath)
	if err != nil {
		t.Fatalf("Reopening logger failed: %v", err)
	}
	second.Log("run two")
	second.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	if !strings.Contains(string(data), "run one") || !strings.Contains(string(data), "run two") {
		t.Errorf("Expected both runs in log, got: %q", data)
	}
}
