package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// FixtureName returns the canonical fixture filename for a 1-based index
// (IMG_001.jpg, IMG_002.jpg, ...).
func FixtureName(n int) string {
	return fmt.Sprintf("IMG_%03d.jpg", n)
}

// logManifest reports a failed manifest write without interrupting
// generation. The manifest is an audit trail, never a reason to stop
// producing fixtures.
func logManifest(err error) {
	if err != nil {
		fmt.Printf("Warning: failed to write session manifest: %v\n", err)
	}
}

// GenerateFixtureSet creates cfg.Count fixtures in cfg.OutputDir, all sharing
// cfg.Date as their EXIF creation timestamp. The output directory is created
// if absent; existing fixture files are overwritten. Generation aborts on the
// first failure, leaving already-written files in place. session may be nil
// (no manifest is recorded then).
func GenerateFixtureSet(cfg *Config, session *GenerateSession) error {
	if err := ValidateTimestamp(cfg.Date); err != nil {
		return err
	}
	if cfg.Count < 1 {
		return fmt.Errorf("fixture count must be at least 1, got %d", cfg.Count)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	if session != nil {
		logManifest(session.LogSessionStart(cfg.Count, cfg.Date))
	}

	for i := 1; i <= cfg.Count; i++ {
		path := filepath.Join(cfg.OutputDir, FixtureName(i))

		fx, err := NewFixture(path, cfg.Date, cfg)
		if err != nil {
			return err
		}

		if err := CreateSampleImage(fx); err != nil {
			procErr := CategorizeError(path, err)
			if session != nil {
				logManifest(session.LogError(path, procErr))
			}
			return procErr
		}

		if session != nil {
			logManifest(session.LogCreated(path, cfg.Date))
		}
	}

	if session != nil {
		logManifest(session.LogSessionEnd())
	}

	fmt.Printf("\nCreated %d test images with identical creation dates.\n", cfg.Count)
	fmt.Println("These can be used to test tools that read the EXIF DateTime family of tags.")
	fmt.Printf("Run: fixturegen verify %s to confirm the dates match.\n", cfg.OutputDir)

	return nil
}
