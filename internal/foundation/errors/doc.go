// Package errors provides the classified error primitives used across raggedy.
//
// Every failure that can end a scan is a ClassifiedError carrying a category,
// a severity, a message, an optional cause and a small context map (usually
// the offending path). The CLI adapter turns the category into an exit code
// and a one-line message for stderr.
//
// Example usage:
//
//	err := errors.FileSystemError("failed to read directory").
//		WithContext("path", dir).
//		WithCause(ioErr).
//		Build()
package errors
