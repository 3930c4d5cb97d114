package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/domain"
)

// Loader reads manifest files
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new manifest loader. A nil fs uses the OS filesystem.
func NewLoader(fsys afero.Fs) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Loader{fs: fsys}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := afero.ReadFile(l.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, extension(path))
}

// LoadFromBytes parses a manifest from raw bytes. ext is ".json" or ".json.gz".
func (l *Loader) LoadFromBytes(data []byte, ext string) (*domain.Manifest, error) {
	switch strings.ToLower(ext) {
	case ".json":
	case ".json.gz", ".gz":
		unpacked, err := gunzip(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		data = unpacked
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m domain.Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return &m, nil
}

func extension(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".json.gz") {
		return ".json.gz"
	}
	return filepath.Ext(lower)
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
