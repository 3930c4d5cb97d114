package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not valid JSON
	ErrInvalidFormat = errors.New("manifest must be valid JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json or .json.gz)")

	// ErrCountMismatch indicates count differs from len(reports)
	ErrCountMismatch = errors.New("count does not match number of reports")

	// ErrNotSorted indicates reports are not sorted by name
	ErrNotSorted = errors.New("reports are not sorted by name")

	// ErrInvalidEntry indicates a malformed report entry
	ErrInvalidEntry = errors.New("invalid report entry")

	// ErrMissingReport indicates a listed report file no longer exists
	ErrMissingReport = errors.New("listed report not found")
)
