// Package output persists manifests to the filesystem.
package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/utils"
)

const (
	filePerm   = 0644
	tmpSuffix  = ".tmp"
	gzipSuffix = ".gz"
)

// Writer writes a manifest as indented JSON, replacing the previous file
type Writer struct {
	fs     afero.Fs
	path   string
	gzip   bool
	dryRun bool
	logger *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Fs     afero.Fs
	Path   string
	Gzip   bool
	DryRun bool
	Logger *utils.Logger
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Path == "" {
		opts.Path = "manifest.json"
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Writer{
		fs:     opts.Fs,
		path:   opts.Path,
		gzip:   opts.Gzip,
		dryRun: opts.DryRun,
		logger: opts.Logger.WithComponent("writer").WithPath(opts.Path),
	}
}

// Path returns the manifest file path
func (w *Writer) Path() string {
	return w.path
}

// Write serializes m and replaces the manifest file with it.
// The file is either fully rewritten or left untouched.
func (w *Writer) Write(ctx context.Context, m *domain.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(m)
	if err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if w.dryRun {
		w.logger.Info().Int("bytes", len(data)).Msg("Dry run, manifest not written")
		return nil
	}

	if err := utils.EnsureDir(w.fs, w.path); err != nil {
		return domain.NewWriteError(w.path, err)
	}
	if err := w.writeAtomic(w.path, data); err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if err := w.syncGzip(data); err != nil {
		return err
	}

	w.logger.Debug().
		Int("count", m.Count).
		Int("bytes", len(data)).
		Bool("gzip", w.gzip).
		Msg("Manifest written")

	return nil
}

// Encode returns the 2-space indented JSON form of m
func Encode(m *domain.Manifest) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil manifest")
	}
	return json.MarshalIndent(m, "", "  ")
}

// syncGzip writes <path>.gz when enabled and removes a leftover one otherwise,
// so the sidecar never lags behind the manifest
func (w *Writer) syncGzip(data []byte) error {
	gzPath := w.path + gzipSuffix

	if !w.gzip {
		err := w.fs.Remove(gzPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return domain.NewWriteError(gzPath, err)
		}
		if err == nil {
			w.logger.Debug().Str("file", gzPath).Msg("Removed stale gzip manifest")
		}
		return nil
	}

	compressed, err := compress(data)
	if err != nil {
		return domain.NewWriteError(gzPath, err)
	}
	if err := w.writeAtomic(gzPath, compressed); err != nil {
		return domain.NewWriteError(gzPath, err)
	}
	return nil
}

// writeAtomic writes data to <path>.tmp and renames it over path
func (w *Writer) writeAtomic(path string, data []byte) error {
	tmpPath := path + tmpSuffix

	if err := afero.WriteFile(w.fs, tmpPath, data, filePerm); err != nil {
		_ = w.fs.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := w.fs.Rename(tmpPath, path); err != nil {
		_ = w.fs.Remove(tmpPath)
		return fmt.Errorf("renaming temp to target: %w", err)
	}

	return nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
