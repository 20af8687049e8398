package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildVerifyReport_IdenticalSet(t *testing.T) {
	tempDir := t.TempDir()

	for i := 1; i <= 3; i++ {
		createFixture(t, filepath.Join(tempDir, FixtureName(i)), testDate)
	}

	cfg := testConfig(tempDir)
	files, err := ScanImageFiles(tempDir, cfg)
	if err != nil {
		t.Fatalf("ScanImageFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(files))
	}

	report := BuildVerifyReport(tempDir, files, NewGoexifReader())

	if !report.Identical {
		t.Errorf("Expected identical report, got %+v", report)
	}
	if report.SharedDate != testDate {
		t.Errorf("Expected shared date %q, got %q", testDate, report.SharedDate)
	}
	if report.TotalFiles != 3 {
		t.Errorf("Expected 3 total files, got %d", report.TotalFiles)
	}
}

func TestBuildVerifyReport_DivergentDates(t *testing.T) {
	tempDir := t.TempDir()

	createFixture(t, filepath.Join(tempDir, "IMG_001.jpg"), testDate)
	createFixture(t, filepath.Join(tempDir, "IMG_002.jpg"), "2023:06:01 08:00:00")

	cfg := testConfig(tempDir)
	files, err := ScanImageFiles(tempDir, cfg)
	if err != nil {
		t.Fatalf("ScanImageFiles failed: %v", err)
	}

	report := BuildVerifyReport(tempDir, files, NewGoexifReader())

	if report.Identical {
		t.Error("Expected non-identical report for divergent dates")
	}
	if report.SharedDate != "" {
		t.Errorf("Expected empty shared date, got %q", report.SharedDate)
	}
}

func TestBuildVerifyReport_UnreadableFile(t *testing.T) {
	tempDir := t.TempDir()

	createFixture(t, filepath.Join(tempDir, "IMG_001.jpg"), testDate)

	// A JPEG-named file with no EXIF (not even a JPEG) counts against identity.
	bogus := filepath.Join(tempDir, "IMG_002.jpg")
	if err := os.WriteFile(bogus, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write bogus file: %v", err)
	}

	cfg := testConfig(tempDir)
	files, err := ScanImageFiles(tempDir, cfg)
	if err != nil {
		t.Fatalf("ScanImageFiles failed: %v", err)
	}

	report := BuildVerifyReport(tempDir, files, NewGoexifReader())

	if report.Identical {
		t.Error("Expected non-identical report when a file's EXIF is unreadable")
	}

	unreadable := 0
	for _, fd := range report.Files {
		if fd.Error != "" {
			unreadable++
		}
	}
	if unreadable != 1 {
		t.Errorf("Expected 1 unreadable file in report, got %d", unreadable)
	}
}

func TestBuildVerifyReport_EmptyFolder(t *testing.T) {
	tempDir := t.TempDir()

	report := BuildVerifyReport(tempDir, nil, NewGoexifReader())

	if report.Identical {
		t.Error("Empty folder must not report identical dates")
	}
	if report.TotalFiles != 0 {
		t.Errorf("Expected 0 total files, got %d", report.TotalFiles)
	}
}
