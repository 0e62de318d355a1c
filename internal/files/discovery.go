package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance. Relative paths handed to
// its methods are resolved against basePath.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}

// IsGlob reports whether path contains glob metacharacters
func IsGlob(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// Iterate expands path into the data files it addresses:
//   - an existing regular file yields itself;
//   - a directory yields every regular file directly inside it, sorted by name;
//   - a path with glob metacharacters yields its matches that are regular files;
//   - anything else is returned as-is, so opening it reports the real error.
func (d *Discovery) Iterate(path string) ([]string, error) {
	fullPath := d.resolve(path)

	info, err := os.Stat(fullPath)
	switch {
	case err == nil && info.Mode().IsRegular():
		abs, err := filepath.Abs(fullPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", fullPath, err)
		}
		return []string{abs}, nil
	case err == nil && info.IsDir():
		found, err := d.ListFiles(fullPath)
		if err != nil {
			return nil, err
		}
		return paths(found), nil
	case IsGlob(path):
		found, err := d.FindFilesByPattern("", fullPath)
		if err != nil {
			return nil, err
		}
		return paths(found), nil
	default:
		return []string{fullPath}, nil
	}
}

// ListFiles returns the regular files directly inside dir, sorted by name
func (d *Discovery) ListFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	abs, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(abs, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	// os.ReadDir already sorts by name; keep it explicit for callers that rely on it
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	slog.Debug("Listed directory",
		slog.String("dir", fullPath),
		slog.Int("file_count", len(files)))

	return files, nil
}

// FindCSVFiles finds all CSV files in the specified directory
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	all, err := d.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, f := range all {
		if strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			files = append(files, f)
		}
	}
	return files, nil
}

// FindFilesByPattern finds regular files matching a glob pattern inside dir.
// An empty dir treats pattern as a complete path pattern.
func (d *Discovery) FindFilesByPattern(dir string, pattern string) ([]FileInfo, error) {
	searchPattern := pattern
	if dir != "" {
		searchPattern = filepath.Join(d.resolve(dir), pattern)
	}

	matches, err := filepath.Glob(searchPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}
	sort.Strings(matches)

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileInfo{
			Path:    match,
			Name:    filepath.Base(match),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

func paths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
