package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		root     string
		segments []string
		expected string
	}{
		{"flat", "report", []string{"a.html"}, "report/a.html"},
		{"nested", "report", []string{"storeA", "x.html"}, "report/storeA/x.html"},
		{"trailing slash", "report/", []string{"a.html"}, "report/a.html"},
		{"dot relative", "./public/report", []string{"a.html"}, "public/report/a.html"},
		{"current dir", ".", []string{"a.html"}, "a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReportPath(tt.root, tt.segments...))
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/srv/site", "report"), ResolvePath("/srv/site", "report"))
	assert.Equal(t, "/var/reports", ResolvePath("/srv/site", "/var/reports/"))
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), "out.json"), ResolvePath("/srv/site", "~/out.json"))
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates directory", func(t *testing.T) {
		tempDir := t.TempDir()
		testPath := filepath.Join(tempDir, "subdir", "file.txt")

		err := EnsureDir(afero.NewOsFs(), testPath)
		require.NoError(t, err)

		info, err := os.Stat(filepath.Dir(testPath))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		testPath := "/out/file.txt"

		require.NoError(t, EnsureDir(fsys, testPath))
		require.NoError(t, EnsureDir(fsys, testPath))

		ok, err := afero.DirExists(fsys, "/out")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "home directory with slash",
			input:    "~/test",
			expected: filepath.Join(os.Getenv("HOME"), "test"),
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: os.Getenv("HOME"),
		},
		{
			name:     "regular path",
			input:    "/tmp/test",
			expected: "/tmp/test",
		},
		{
			name:     "relative path",
			input:    "./test",
			expected: "./test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandPath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
