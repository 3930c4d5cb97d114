package utils

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ReportPath joins the reports root label and the given segments with
// forward slashes, regardless of the host separator.
// Example: ReportPath("report", "storeA", "x.html") → report/storeA/x.html
func ReportPath(root string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, filepath.ToSlash(filepath.Clean(root)))
	parts = append(parts, segments...)
	return path.Join(parts...)
}

// ResolvePath expands ~ and makes p absolute relative to base.
// Absolute paths are returned cleaned.
func ResolvePath(base, p string) string {
	p = ExpandPath(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// EnsureDir ensures the parent directory of path exists
func EnsureDir(fsys afero.Fs, path string) error {
	dir := filepath.Dir(path)
	return fsys.MkdirAll(dir, 0755)
}

// ExecutableDir returns the directory containing the running binary,
// with symlinks resolved
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
