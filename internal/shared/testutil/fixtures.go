package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleCSV is a small file with an unnamed index column, a leading-zero
// numeric column and one non-numeric cell.
const SampleCSV = ",a,b\n0,01,02\n1,x,12\n"

// WriteFile writes content to name inside dir and returns the full path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteLines writes the lines joined by newline, with a trailing newline
func WriteLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return WriteFile(t, dir, name, content)
}

// ReadFile returns the content of path as a string
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
