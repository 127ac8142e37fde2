// Package codec implements the compression-method adapter: a uniform
// contract for compressing and uncompressing strings, single files, whole
// directories and generic filesystem paths. Files and strings use the GZIP
// container format; directories compose the tar-archival collaborator with
// the file flow. All operations are synchronous and blocking; a Codec
// instance is safe to share across callers that do not target the same
// destination path.
package codec

import (
	"context"

	"go.uber.org/zap"

	"github.com/iamNilotpal/gzip/internal/adapters/archive"
	"github.com/iamNilotpal/gzip/internal/adapters/compression"
	localfs "github.com/iamNilotpal/gzip/internal/adapters/fs"
	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/internal/core/ports"
	"github.com/iamNilotpal/gzip/pkg/pool"
	"github.com/iamNilotpal/gzip/pkg/system"
)

// Codec is the compression-method adapter. Configuration is immutable
// after construction; the only mutable state is the reusable in-memory
// encoder, which guards itself.
type Codec struct {
	// Configuration options: compression level and streaming chunk size.
	options *domain.CompressionOptions

	// Collaborators.
	fs       ports.FileSystemPort  // Handles filesystem operations.
	archiver ports.ArchiverPort    // Handles tar archival of directories.
	memory   ports.CompressionPort // Handles in-memory string compression.

	// Streaming support.
	chunks *pool.ChunkPool // Chunk buffers for the byte pump.

	logger *zap.SugaredLogger
}

// Config carries the collaborators a Codec is built from. Nil fields fall
// back to the local filesystem, the tar archiver, default options and a
// no-op logger.
type Config struct {
	Options    *domain.CompressionOptions
	FileSystem ports.FileSystemPort
	Archiver   ports.ArchiverPort
	Logger     *zap.SugaredLogger
}

// New constructs a Codec. Options are validated eagerly: an out-of-range
// compression level or a non-positive chunk size is rejected with a
// ValidationError before any operation can run.
func New(cfg Config) (*Codec, error) {
	options := cfg.Options
	if options == nil {
		options = compression.DefaultOptions()
	}
	if err := compression.Validate(options); err != nil {
		return nil, err
	}

	memory, err := compression.NewGzipCompression(
		compression.Options{Level: options.Level, ChunkSize: options.ChunkSize},
	)
	if err != nil {
		return nil, err
	}

	fs := cfg.FileSystem
	if fs == nil {
		fs = localfs.NewLocalFileSystem()
	}

	archiver := cfg.Archiver
	if archiver == nil {
		archiver = archive.NewTarArchiver()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Codec{
		options:  options,
		fs:       fs,
		archiver: archiver,
		memory:   memory,
		chunks:   pool.NewChunkPool(options.ChunkSize),
		logger:   logger,
	}, nil
}

// Level returns the configured compression level.
func (c *Codec) Level() uint8 {
	return c.options.Level
}

// Close releases the reusable in-memory encoder. The context bounds how
// long the caller is willing to wait for teardown.
func (c *Codec) Close(ctx context.Context) error {
	return system.RunWithContext(ctx, func(context.Context) error {
		return c.memory.Close()
	})
}

// discard removes a partially written output after a failed operation.
// Best-effort: failures are logged, never returned, so they cannot mask
// the error that triggered the cleanup.
func (c *Codec) discard(path string) {
	exists, err := c.fs.Exists(path)
	if err != nil {
		c.logger.Warnw("failed to probe partial output for cleanup", "path", path, "error", err)
		return
	}
	if !exists {
		return
	}
	if err := c.fs.DeleteFile(path); err != nil {
		c.logger.Warnw("failed to delete partial output", "path", path, "error", err)
	}
}

// discardTree removes a directory tree a failed expansion created,
// including any files already extracted into it. Same best-effort policy
// as discard: failures are logged, never returned.
func (c *Codec) discardTree(path string) {
	exists, err := c.fs.Exists(path)
	if err != nil {
		c.logger.Warnw("failed to probe partial directory for cleanup", "path", path, "error", err)
		return
	}
	if !exists {
		return
	}
	if err := c.fs.DeleteTree(path); err != nil {
		c.logger.Warnw("failed to delete partial directory", "path", path, "error", err)
	}
}
