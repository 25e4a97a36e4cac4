package capture

import (
	"fmt"
	"os"
)

// WriteFile creates path and lets fill write entries to it.
func WriteFile(path string, c Compression, fill func(*Writer) error) error {
	f, err := os.Create(path) // #nosec G304 -- caller-chosen output path
	if err != nil {
		return fmt.Errorf("creating capture %s: %w", path, err)
	}
	defer f.Close()

	w, err := NewWriter(f, c)
	if err != nil {
		return err
	}
	if err := fill(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flushing capture %s: %w", path, err)
	}
	return f.Close()
}
