package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a temporary directory for testing
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "reportmanifest-test-*")
	require.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	return tmpDir
}

// TempProject creates a temporary project root and returns it together with
// the path its reports directory would have, without creating that directory
func TempProject(t *testing.T) (root, reportsDir string) {
	t.Helper()

	root = TempDir(t)
	return root, filepath.Join(root, "report")
}
