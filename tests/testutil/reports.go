package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/reportmanifest/internal/domain"
)

// WriteTree creates files under root. Keys are slash-separated paths relative
// to root; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
}

// Touch sets the modification time of a file
func Touch(t *testing.T, fsys afero.Fs, path string, mtime time.Time) {
	t.Helper()

	require.NoError(t, fsys.Chtimes(path, mtime, mtime))
}

// ReadManifest decodes the manifest stored at path
func ReadManifest(t *testing.T, fsys afero.Fs, path string) *domain.Manifest {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)

	var m domain.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	return &m
}

// EntryNames returns the names of entries in order
func EntryNames(entries []domain.ManifestEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
