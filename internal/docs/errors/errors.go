package errors

// Package errors provides sentinel errors for documentation scan operations.
// They are wrapped inside classified errors, so callers match them with errors.Is.

import "errors"

var (
	// ErrDocsPathNotFound indicates the scan root does not exist.
	ErrDocsPathNotFound = errors.New("scan root not found")

	// ErrRootNotDirectory indicates the scan root exists but is not a directory.
	ErrRootNotDirectory = errors.New("scan root is not a directory")

	// ErrDocsDirWalkFailed indicates listing the entries of a directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading content from a matched documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidEncoding indicates a matched file's bytes are not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("documentation file is not valid UTF-8")

	// ErrInvalidRelativePath indicates a collected path does not lie under the scan root.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")

	// ErrUnrecognizedDialect indicates a path reached the reader without a supported extension.
	ErrUnrecognizedDialect = errors.New("unrecognized documentation dialect")

	// ErrScanCanceled indicates the scan was interrupted before completion.
	ErrScanCanceled = errors.New("scan canceled")
)
