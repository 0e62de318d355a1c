package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Manager provides file management operations
type Manager struct {
	baseDir string
}

// NewManager creates a new file manager instance. Relative paths are resolved
// against baseDir; an empty baseDir leaves them relative to the working directory.
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// WriteAtomic replaces the file at path with whatever write produces. The data
// goes to a temporary file in the same directory which is synced and then
// renamed over the target, so a failure part way leaves the old file intact.
// An existing file keeps its permission bits.
func (m *Manager) WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	fullPath := m.resolvePath(path)
	dir := filepath.Dir(fullPath)

	slog.Debug("Writing file atomically",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	mode := os.FileMode(0644)
	if info, statErr := os.Stat(fullPath); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpName, fullPath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", fullPath, err)
	}
	return nil
}

// resolvePath resolves a path relative to the base directory
func (m *Manager) resolvePath(path string) string {
	if filepath.IsAbs(path) || m.baseDir == "" {
		return path
	}
	return filepath.Join(m.baseDir, path)
}
