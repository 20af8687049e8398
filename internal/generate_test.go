package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateFixtureSet_CreatesNamedFiles(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	cfg := testConfig(outputDir)

	if err := GenerateFixtureSet(cfg, nil); err != nil {
		t.Fatalf("GenerateFixtureSet failed: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Output directory not created: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("Expected exactly 4 files, found %d", len(entries))
	}

	expected := []string{"IMG_001.jpg", "IMG_002.jpg", "IMG_003.jpg", "IMG_004.jpg"}
	for _, name := range expected {
		path := filepath.Join(outputDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected fixture not found: %s", path)
		}
	}
}

func TestGenerateFixtureSet_IdenticalDates(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	cfg := testConfig(outputDir)

	if err := GenerateFixtureSet(cfg, nil); err != nil {
		t.Fatalf("GenerateFixtureSet failed: %v", err)
	}

	for i := 1; i <= 4; i++ {
		path := filepath.Join(outputDir, FixtureName(i))
		tags := readDates(t, path)

		if tags.DateTimeOriginal != testDate {
			t.Errorf("%s: expected DateTimeOriginal %q, got %q", path, testDate, tags.DateTimeOriginal)
		}
		if !tags.Identical() {
			t.Errorf("%s: DateTime slots differ: %+v", path, tags)
		}
	}
}

func TestGenerateFixtureSet_Idempotent(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	cfg := testConfig(outputDir)

	if err := GenerateFixtureSet(cfg, nil); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if err := GenerateFixtureSet(cfg, nil); err != nil {
		t.Fatalf("Second run over existing directory failed: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected 4 files after re-run, found %d", len(entries))
	}
}

func TestGenerateFixtureSet_InvalidDateAbortsEarly(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	cfg := testConfig(outputDir)
	cfg.Date = "15/01/2024 14:30"

	if err := GenerateFixtureSet(cfg, nil); err == nil {
		t.Fatal("Expected error for malformed date, got nil")
	}

	// Validation happens before directory creation, so nothing is written.
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("Output directory should not exist after rejected date")
	}
}

func TestGenerateFixtureSet_CustomCount(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	cfg := testConfig(outputDir)
	cfg.Count = 2

	if err := GenerateFixtureSet(cfg, nil); err != nil {
		t.Fatalf("GenerateFixtureSet failed: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 files, found %d", len(entries))
	}
}

func TestGenerateFixtureSet_AbortsOnFirstFailure(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")

	// A directory squatting on the third fixture name makes its final rename
	// fail mid-sequence.
	if err := os.MkdirAll(filepath.Join(outputDir, FixtureName(3)), 0755); err != nil {
		t.Fatalf("Failed to create blocking directory: %v", err)
	}

	cfg := testConfig(outputDir)

	err := GenerateFixtureSet(cfg, nil)
	if err == nil {
		t.Fatal("Expected error when a fixture write fails, got nil")
	}

	var procErr *ProcessError
	if !errors.As(err, &procErr) {
		t.Errorf("Expected a *ProcessError, got %T: %v", err, err)
	}

	// Files written before the failure stay on disk.
	for i := 1; i <= 2; i++ {
		path := filepath.Join(outputDir, FixtureName(i))
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Fixture written before the failure is missing: %s", path)
			continue
		}
		if info.IsDir() {
			t.Errorf("Expected %s to be a file", path)
		}
	}

	// The sequence stops at the failure point.
	if _, err := os.Stat(filepath.Join(outputDir, FixtureName(4))); !os.IsNotExist(err) {
		t.Errorf("%s should never be written after an earlier failure", FixtureName(4))
	}
}

func TestGenerateFixtureSet_ManifestFailureDoesNotStopGeneration(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")
	sessionsRoot := filepath.Join(tempDir, "sessions")

	session, err := NewGenerateSession(sessionsRoot, outputDir)
	if err != nil {
		t.Fatalf("NewGenerateSession failed: %v", err)
	}

	// Close the manifest handle so every manifest write fails.
	session.ManifestFile.Close()

	cfg := testConfig(outputDir)
	if err := GenerateFixtureSet(cfg, session); err != nil {
		t.Fatalf("Generation must survive manifest write failures: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected all 4 fixtures despite manifest failures, found %d", len(entries))
	}
}

func TestGenerateFixtureSet_WithSession(t *testing.T) {
	tempDir := t.TempDir()
	outputDir := filepath.Join(tempDir, "test_photos")
	sessionsRoot := filepath.Join(tempDir, "sessions")

	session, err := NewGenerateSession(sessionsRoot, outputDir)
	if err != nil {
		t.Fatalf("NewGenerateSession failed: %v", err)
	}
	defer session.Close()

	cfg := testConfig(outputDir)
	if err := GenerateFixtureSet(cfg, session); err != nil {
		t.Fatalf("GenerateFixtureSet failed: %v", err)
	}

	stats := session.GetStats()
	if stats.Planned != 4 {
		t.Errorf("Expected 4 planned, got %d", stats.Planned)
	}
	if stats.Created != 4 {
		t.Errorf("Expected 4 created, got %d", stats.Created)
	}
	if stats.Errors != 0 {
		t.Errorf("Expected 0 errors, got %d", stats.Errors)
	}

	// Session manifest must not pollute the fixture directory.
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected only the 4 fixtures in output dir, found %d entries", len(entries))
	}
}
