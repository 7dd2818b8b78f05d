// Package storage persists collected news and analysis results. Each
// backend owns its format; the pipeline hands every backend the same
// output shapes and failures stay isolated per backend.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ensureDir creates the output directory when missing.
func ensureDir(base string) error {
	if err := os.MkdirAll(base, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return nil
}

// resolve joins the base path and filename.
func resolve(base, filename string) string {
	return filepath.Join(base, filename)
}
