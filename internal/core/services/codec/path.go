package codec

import (
	"context"
	"fmt"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/pkg/errors"
	pathfs "github.com/iamNilotpal/gzip/pkg/fs"
)

// CompressPath compresses whatever a path denotes: directories take the
// tar+gzip flow, regular files the gzip flow. The kind is resolved once by
// the filesystem collaborator and matched exhaustively; a path that does
// not exist is an explicit failure, not a fall-through.
func (c *Codec) CompressPath(ctx context.Context, path string) (string, error) {
	const op = "compress path"

	kind, err := c.fs.Kind(path)
	if err != nil {
		return "", errors.NewCompressError(op, path, err)
	}

	switch kind {
	case domain.PathKindDirectory:
		return c.CompressDirectory(ctx, path)
	case domain.PathKindFile:
		return c.CompressFile(ctx, path)
	default:
		return "", errors.NewCompressError(op, path, fmt.Errorf("path does not exist: %s", path))
	}
}

// UncompressPath restores whatever a compressed path holds, routed purely
// by suffix: tar.gz takes the directory flow, gz (and not tar.gz) the file
// flow. Any other suffix fails with an unknown-extension error naming the
// path.
func (c *Codec) UncompressPath(ctx context.Context, path string) (string, error) {
	switch {
	case pathfs.HasSuffix(path, domain.TarGzipSuffix):
		return c.UncompressDirectory(ctx, path)
	case pathfs.HasSuffix(path, domain.GzipSuffix):
		return c.UncompressFile(ctx, path)
	default:
		return "", &errors.UnknownExtensionError{Path: path}
	}
}
