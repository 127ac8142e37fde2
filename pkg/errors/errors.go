package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the failures a compression or decompression
// operation can surface. Lower-level filesystem and archive failures are
// always rewrapped into one of the two domain categories before they reach
// a caller; the collaborator categories exist so wrapping sites can state
// where the underlying cause originated.
type ErrorCategory int

const (
	// ErrorCompress indicates a failure while producing a compressed
	// artifact: missing source, wrong source kind, or an I/O failure
	// mid-stream.
	ErrorCompress ErrorCategory = iota + 1

	// ErrorUncompress indicates a failure while restoring an artifact:
	// missing source, wrong or unknown suffix, malformed GZIP container,
	// or an I/O failure mid-stream.
	ErrorUncompress

	// ErrorFileSystem indicates a failure originating in the filesystem
	// collaborator (open, read, write, close, delete).
	ErrorFileSystem

	// ErrorArchive indicates a failure originating in the tar-archival
	// collaborator.
	ErrorArchive
)

// String returns the string representation of the error category.
// Used in error messages and log fields.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorCompress:
		return "compress"
	case ErrorUncompress:
		return "uncompress"
	case ErrorFileSystem:
		return "filesystem"
	case ErrorArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// CodecError is the one error type callers of the codec observe. It names
// the operation that failed, the path it failed on and the category the
// failure belongs to, and chains the underlying cause.
type CodecError struct {
	Err       error
	Operation string
	Path      string
	Category  ErrorCategory
}

func (e *CodecError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCompressError wraps err as a compression failure for path.
func NewCompressError(operation, path string, err error) *CodecError {
	return &CodecError{Err: err, Operation: operation, Path: path, Category: ErrorCompress}
}

// NewUncompressError wraps err as a decompression failure for path.
func NewUncompressError(operation, path string, err error) *CodecError {
	return &CodecError{Err: err, Operation: operation, Path: path, Category: ErrorUncompress}
}

// NewFileSystemError wraps err as a filesystem collaborator failure.
func NewFileSystemError(operation, path string, err error) *CodecError {
	return &CodecError{Err: err, Operation: operation, Path: path, Category: ErrorFileSystem}
}

// NewArchiveError wraps err as a tar-archival collaborator failure.
func NewArchiveError(operation, path string, err error) *CodecError {
	return &CodecError{Err: err, Operation: operation, Path: path, Category: ErrorArchive}
}

// AsCodecError attempts to extract a CodecError from a given error.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsCompressError checks if a given error is a compression-side CodecError.
func IsCompressError(err error) bool {
	ce := AsCodecError(err)
	return ce != nil && ce.Category == ErrorCompress
}

// IsUncompressError checks if a given error is a decompression-side CodecError.
func IsUncompressError(err error) bool {
	ce := AsCodecError(err)
	return ce != nil && ce.Category == ErrorUncompress
}

// UnknownExtensionError is returned by the path dispatcher when a compressed
// path carries neither the gz nor the tar.gz suffix.
type UnknownExtensionError struct {
	Path string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension: cannot determine compression method for %s", e.Path)
}

// IsUnknownExtensionError checks if a given error is of type UnknownExtensionError.
func IsUnknownExtensionError(err error) bool {
	var ue *UnknownExtensionError
	return errors.As(err, &ue)
}
