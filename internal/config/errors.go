package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for project resolution.
var (
	// ErrPathNotFound indicates the given path does not exist.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotDirectory indicates the given path is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
	// ErrNotAProject indicates the path is neither a project directory
	// nor a pack.yml file.
	ErrNotAProject = errors.New("path is not a shulkerscript project")
	// ErrNonEmptyDirectory indicates a directory that was expected to be
	// empty contains entries.
	ErrNonEmptyDirectory = errors.New("directory is not empty")
)

// InvalidManifestError indicates a manifest file that could not be parsed
// or failed validation.
type InvalidManifestError struct {
	Path string
	Err  error
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid project manifest %s: %v", e.Path, e.Err)
}

func (e *InvalidManifestError) Unwrap() error {
	return e.Err
}
