package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanImageFiles scans a directory recursively for image files based on the
// configured extensions. Results come back in walk order.
func ScanImageFiles(dir string, cfg *Config) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(info.Name()))
		for _, e := range cfg.ImageExt {
			if ext == e {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning files: %w", err)
	}
	return files, nil
}
