package ports

import (
	"io"

	"github.com/iamNilotpal/gzip/internal/core/domain"
)

// FileSystemPort is the filesystem collaborator the codecs consume. Stream
// handles returned by the open methods are bound to exactly one underlying
// path and must be closed by the caller on every exit path.
type FileSystemPort interface {
	// Exists reports whether a path exists at all.
	Exists(path string) (bool, error)

	// Kind resolves a path into the closed {none, file, directory}
	// variant.
	Kind(path string) (domain.PathKind, error)

	// OpenRead opens an existing file for sequential reading.
	OpenRead(path string) (io.ReadCloser, error)

	// Create creates a file for writing, truncating any existing
	// content.
	Create(path string) (io.WriteCloser, error)

	// OpenAppend opens a file for appending, creating it if absent.
	OpenAppend(path string) (io.WriteCloser, error)

	// DeleteFile removes a single file.
	DeleteFile(path string) error

	// DeleteTree removes a directory and everything beneath it.
	DeleteTree(path string) error
}
