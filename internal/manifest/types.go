package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/domain"
)

// VerifyOptions controls which checks Verify performs
type VerifyOptions struct {
	// ReportsLabel is the expected path prefix of every entry; empty skips the check
	ReportsLabel string
	// Mode, when set, requires store to be present (nested) or absent (flat)
	Mode domain.ScanMode
	// Fs and ProjectRoot, when both set, make Verify stat every listed file
	Fs          afero.Fs
	ProjectRoot string
}

// Verify checks that m is internally consistent. It returns the first
// violation found.
func Verify(m *domain.Manifest, opts VerifyOptions) error {
	if m == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}
	if m.Reports == nil {
		return fmt.Errorf("%w: missing reports", ErrInvalidFormat)
	}
	if m.Generated.IsZero() {
		return fmt.Errorf("%w: missing generated timestamp", ErrInvalidFormat)
	}
	if m.Count != len(m.Reports) {
		return fmt.Errorf("%w: count %d, reports %d", ErrCountMismatch, m.Count, len(m.Reports))
	}
	if !domain.EntriesSorted(m.Reports) {
		return ErrNotSorted
	}

	for i, e := range m.Reports {
		if err := verifyEntry(e, opts); err != nil {
			return fmt.Errorf("report %d (%s): %w", i, e.Name, err)
		}
	}

	return nil
}

func verifyEntry(e domain.ManifestEntry, opts VerifyOptions) error {
	if !strings.HasSuffix(e.Name, domain.HTMLExtension) {
		return fmt.Errorf("%w: name must end in %s", ErrInvalidEntry, domain.HTMLExtension)
	}
	if path.Base(e.Path) != e.Name {
		return fmt.Errorf("%w: path %q does not end in name", ErrInvalidEntry, e.Path)
	}
	if e.Size < 0 {
		return fmt.Errorf("%w: negative size", ErrInvalidEntry)
	}
	if e.Modified.IsZero() {
		return fmt.Errorf("%w: missing modified timestamp", ErrInvalidEntry)
	}

	if opts.ReportsLabel != "" {
		expected := path.Join(opts.ReportsLabel, e.Store, e.Name)
		if e.Path != expected {
			return fmt.Errorf("%w: path %q, expected %q", ErrInvalidEntry, e.Path, expected)
		}
	}

	switch opts.Mode {
	case domain.ScanModeNested:
		if e.Store == "" {
			return fmt.Errorf("%w: missing store", ErrInvalidEntry)
		}
	case domain.ScanModeFlat:
		if e.Store != "" {
			return fmt.Errorf("%w: unexpected store %q", ErrInvalidEntry, e.Store)
		}
	}

	if opts.Fs != nil && opts.ProjectRoot != "" {
		target := e.Path
		if !filepath.IsAbs(filepath.FromSlash(target)) {
			target = filepath.Join(opts.ProjectRoot, filepath.FromSlash(target))
		}
		if _, err := opts.Fs.Stat(target); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrMissingReport, e.Path)
			}
			return domain.NewScanError(target, err)
		}
	}

	return nil
}
