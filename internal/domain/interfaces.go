package domain

import "context"

//go:generate mockgen -destination=../../tests/mocks/domain_mock.go -package=mocks . Scanner,ManifestWriter

// Scanner lists report files
type Scanner interface {
	// Scan returns the discovered entries sorted by name
	Scan(ctx context.Context) ([]ManifestEntry, error)
	// Mode returns the traversal mode
	Mode() ScanMode
}

// ManifestWriter persists a manifest
type ManifestWriter interface {
	// Write replaces the output with m
	Write(ctx context.Context, m *Manifest) error
	// Path returns the output file path
	Path() string
}
