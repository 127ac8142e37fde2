// Package fs implements the filesystem collaborator over the local
// operating system filesystem.
package fs

import (
	"errors"
	"io"
	"os"

	"github.com/iamNilotpal/gzip/internal/core/domain"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Exists checks if a path exists.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Kind resolves a path into {none, file, directory}. Anything that exists
// and is not a directory counts as a file.
func (lfs *LocalFileSystem) Kind(path string) (domain.PathKind, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.PathKindNone, nil
		}
		return domain.PathKindNone, err
	}
	if stat.IsDir() {
		return domain.PathKindDirectory, nil
	}
	return domain.PathKindFile, nil
}

// OpenRead opens an existing file for reading.
func (lfs *LocalFileSystem) OpenRead(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create creates a file for writing, truncating existing content.
func (lfs *LocalFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// OpenAppend opens a file for appending, creating it if absent.
func (lfs *LocalFileSystem) OpenAppend(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// DeleteFile removes a single file.
func (lfs *LocalFileSystem) DeleteFile(path string) error {
	return os.Remove(path)
}

// DeleteTree removes a directory and its contents.
func (lfs *LocalFileSystem) DeleteTree(path string) error {
	return os.RemoveAll(path)
}
