// Package scanner discovers HTML report files in a reports directory.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/converter"
	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/utils"
)

// Scanner lists report files in flat or nested mode
type Scanner struct {
	fs       afero.Fs
	root     string
	label    string
	mode     domain.ScanMode
	exclude  []string
	titles   bool
	progress io.Writer
	logger   *utils.Logger
}

// Options contains options for creating a scanner
type Options struct {
	// Fs defaults to the OS filesystem
	Fs afero.Fs
	// Root is the reports directory
	Root string
	// Label prefixes every entry path; defaults to Root in slash form
	Label string
	Mode  domain.ScanMode
	// Exclude holds doublestar patterns matched against "<name>" in flat
	// mode and "<store>/<name>" in nested mode
	Exclude []string
	// Titles enables <title> extraction
	Titles bool
	// Progress receives a progress bar; nil disables it
	Progress io.Writer
	Logger   *utils.Logger
}

// New creates a scanner
func New(opts Options) (*Scanner, error) {
	if opts.Root == "" {
		return nil, domain.NewValidationError("root", "reports directory is required")
	}
	if !opts.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, opts.Mode)
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, domain.NewValidationError("exclude", fmt.Sprintf("bad pattern %q", pattern))
		}
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	label := opts.Label
	if label == "" {
		label = filepath.ToSlash(filepath.Clean(opts.Root))
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Scanner{
		fs:       fsys,
		root:     opts.Root,
		label:    label,
		mode:     opts.Mode,
		exclude:  opts.Exclude,
		titles:   opts.Titles,
		progress: opts.Progress,
		logger:   logger.WithComponent("scanner").WithMode(opts.Mode.String()),
	}, nil
}

// Mode returns the traversal mode
func (s *Scanner) Mode() domain.ScanMode {
	return s.mode
}

// Scan lists the reports directory and returns its entries sorted by name.
// A missing directory yields no entries; in flat mode it is created first.
func (s *Scanner) Scan(ctx context.Context) ([]domain.ManifestEntry, error) {
	info, err := s.fs.Stat(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return s.missingRoot()
	}
	if err != nil {
		return nil, domain.NewScanError(s.root, err)
	}
	if !info.IsDir() {
		return nil, domain.NewScanError(s.root, domain.ErrNotDirectory)
	}

	items, err := s.readDir(s.root)
	if err != nil {
		return nil, err
	}

	bar := s.newProgressBar(len(items))
	entries := []domain.ManifestEntry{}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan interrupted: %w", err)
		}

		var found []domain.ManifestEntry
		switch s.mode {
		case domain.ScanModeFlat:
			found, err = s.collectFile(s.root, "", item)
		case domain.ScanModeNested:
			found, err = s.collectStore(item)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	domain.SortEntries(entries)

	s.logger.Debug().
		Str("root", s.root).
		Int("count", len(entries)).
		Msg("Scan complete")

	return entries, nil
}

func (s *Scanner) missingRoot() ([]domain.ManifestEntry, error) {
	if s.mode == domain.ScanModeNested {
		s.logger.Debug().Str("root", s.root).Msg("Reports directory does not exist")
		return []domain.ManifestEntry{}, nil
	}

	if err := s.fs.MkdirAll(s.root, 0755); err != nil {
		return nil, domain.NewScanError(s.root, err)
	}
	s.logger.Debug().Str("root", s.root).Msg("Created reports directory")
	return []domain.ManifestEntry{}, nil
}

// collectStore lists the immediate files of a subdirectory. Anything that is
// not a directory is ignored.
func (s *Scanner) collectStore(item os.FileInfo) ([]domain.ManifestEntry, error) {
	if !item.IsDir() {
		return nil, nil
	}

	store := item.Name()
	dir := filepath.Join(s.root, store)
	children, err := s.readDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []domain.ManifestEntry
	for _, child := range children {
		found, err := s.collectFile(dir, store, child)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

// collectFile turns a single directory item into an entry when it is a
// regular .html file that no exclude pattern matches
func (s *Scanner) collectFile(dir, store string, item os.FileInfo) ([]domain.ManifestEntry, error) {
	name := item.Name()
	if !item.Mode().IsRegular() || !strings.HasSuffix(name, domain.HTMLExtension) {
		return nil, nil
	}

	rel := name
	if store != "" {
		rel = store + "/" + name
	}
	if s.excluded(rel) {
		s.logger.Debug().Str("file", rel).Msg("Excluded by pattern")
		return nil, nil
	}

	entry := domain.ManifestEntry{
		Name:     name,
		Path:     utils.ReportPath(s.label, rel),
		Store:    store,
		Size:     item.Size(),
		Modified: domain.NewTimestamp(item.ModTime()),
	}

	if s.titles {
		title, err := s.readTitle(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entry.Title = title
	}

	s.logger.Debug().
		Str("file", entry.Path).
		Int64("size", entry.Size).
		Msg("Found report")

	return []domain.ManifestEntry{entry}, nil
}

func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *Scanner) readTitle(path string) (string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "", domain.NewScanError(path, err)
	}
	defer f.Close()

	title, err := converter.ExtractTitle(f)
	if err != nil {
		return "", domain.NewScanError(path, err)
	}
	return title, nil
}

func (s *Scanner) readDir(dir string) ([]os.FileInfo, error) {
	items, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, domain.NewScanError(dir, err)
	}
	s.logger.Debug().Str("dir", dir).Int("items", len(items)).Msg("Listed directory")
	return items, nil
}

func (s *Scanner) newProgressBar(total int) *progressbar.ProgressBar {
	if s.progress == nil || total == 0 {
		return nil
	}
	return utils.NewProgressBar(total, utils.DescScanning, s.progress)
}
