package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createFiles writes empty files under dir and returns dir
func createFiles(t *testing.T, dir string, names ...string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a,b\n"), 0644))
	}
	return dir
}

func TestNewDiscovery(t *testing.T) {
	discovery := NewDiscovery("/test/base")

	assert.NotNil(t, discovery)
	assert.Equal(t, "/test/base", discovery.basePath)
}

func TestIterate(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := createFiles(t, filepath.Join(tmpDir, "data"), "b.csv", "a.csv", "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "nested"), 0755))

	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "single file",
			path:     filepath.Join(dataDir, "a.csv"),
			expected: []string{filepath.Join(dataDir, "a.csv")},
		},
		{
			name: "directory lists regular files sorted by name",
			path: dataDir,
			expected: []string{
				filepath.Join(dataDir, "a.csv"),
				filepath.Join(dataDir, "b.csv"),
				filepath.Join(dataDir, "notes.txt"),
			},
		},
		{
			name: "glob pattern",
			path: filepath.Join(dataDir, "*.csv"),
			expected: []string{
				filepath.Join(dataDir, "a.csv"),
				filepath.Join(dataDir, "b.csv"),
			},
		},
		{
			name:     "glob with no match",
			path:     filepath.Join(dataDir, "*.xlsx"),
			expected: []string{},
		},
		{
			name:     "missing path is passed through",
			path:     filepath.Join(dataDir, "missing.csv"),
			expected: []string{filepath.Join(dataDir, "missing.csv")},
		},
	}

	discovery := NewDiscovery("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := discovery.Iterate(tt.path)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, got)
			if len(tt.expected) > 1 {
				assert.Equal(t, tt.expected, got, "order should be by name")
			}
		})
	}
}

func TestIterate_RelativeToBase(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, filepath.Join(tmpDir, "in"), "x.csv")

	got, err := NewDiscovery(tmpDir).Iterate("in/x.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "in", "x.csv")}, got)
}

func TestIterate_BadPattern(t *testing.T) {
	_, err := NewDiscovery("").Iterate(filepath.Join(t.TempDir(), "[unclosed"))
	assert.Error(t, err)
}

func TestFindCSVFiles(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		expectedCount int
	}{
		{name: "only CSV files", files: []string{"a.csv", "b.CSV"}, expectedCount: 2},
		{name: "mixed file types", files: []string{"a.csv", "b.xlsx", "c.txt"}, expectedCount: 1},
		{name: "empty directory", files: nil, expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			createFiles(t, filepath.Join(tmpDir, "csv_test"), tt.files...)

			found, err := NewDiscovery(tmpDir).FindCSVFiles("csv_test")
			require.NoError(t, err)
			assert.Len(t, found, tt.expectedCount)
			for _, f := range found {
				assert.FileExists(t, f.Path)
			}
		})
	}
}

func TestFindCSVFiles_MissingDirectory(t *testing.T) {
	_, err := NewDiscovery(t.TempDir()).FindCSVFiles("nope")
	assert.Error(t, err)
}

func TestFindFilesByPattern(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, filepath.Join(tmpDir, "p"), "plant_01.csv", "plant_02.csv", "other.csv")

	found, err := NewDiscovery(tmpDir).FindFilesByPattern("p", "plant_*.csv")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "plant_01.csv", found[0].Name)
	assert.Equal(t, "plant_02.csv", found[1].Name)
}

func TestIsGlob(t *testing.T) {
	assert.True(t, IsGlob("data/*.csv"))
	assert.True(t, IsGlob("data/file?.csv"))
	assert.True(t, IsGlob("data/[ab].csv"))
	assert.False(t, IsGlob("data/file.csv"))
}
