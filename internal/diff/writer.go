package diff

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Fixed paths inside a release directory, relative to its root.
const (
	reportRelPath = "api/changes.md"
	tocRelPath    = "api/toc.yml"
)

// WriteReport writes the rendered report under the new release's api
// directory, creating it if needed, and returns the report path.
func WriteReport(newDir, text string) (string, error) {
	path := filepath.Join(newDir, reportRelPath)

	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	if err := writeFile(path, []byte(text)); err != nil {
		return "", err
	}

	return path, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
