package recorder

import (
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotWriter backs the raw fetched payload up to a local file before any
// filtering happens. Audit artifact only, never read back.
type SnapshotWriter struct {
	Path string
}

// NewSnapshotWriter creates a writer targeting the given path.
func NewSnapshotWriter(path string) *SnapshotWriter {
	return &SnapshotWriter{Path: path}
}

// Write stores the payload verbatim, creating parent directories as needed.
func (w *SnapshotWriter) Write(raw []byte) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(w.Path, raw, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
