package render

import (
	"chat-seeder/internal/seed"
	"fmt"
	"os"
	"path/filepath"
)

// WriteSQL renders ds to path and returns the rendered script.
func WriteSQL(path string, ds *seed.Dataset) (string, error) {
	script := SQL(ds)
	if err := writeFile(path, []byte(script)); err != nil {
		return "", err
	}
	return script, nil
}

// WriteJSON renders ds as JSON to path.
func WriteJSON(path string, ds *seed.Dataset) error {
	doc, err := JSON(ds)
	if err != nil {
		return fmt.Errorf("rendering json: %w", err)
	}
	return writeFile(path, doc)
}

// writeFile creates missing parent directories and writes data in one call.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
