package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidMode indicates an unknown scan mode was requested
	ErrInvalidMode = errors.New("invalid scan mode")

	// ErrScanFailed indicates the reports directory could not be read
	ErrScanFailed = errors.New("scan failed")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")

	// ErrNotDirectory indicates a path expected to be a directory is not one
	ErrNotDirectory = errors.New("not a directory")
)

// ScanError represents a filesystem error while scanning
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan failed for %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is matches ErrScanFailed
func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

// NewScanError creates a new ScanError
func NewScanError(path string, err error) *ScanError {
	return &ScanError{
		Path: path,
		Err:  err,
	}
}

// WriteError represents an error writing the manifest
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is matches ErrWriteFailed
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
