package codec

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/pkg/errors"
	pathfs "github.com/iamNilotpal/gzip/pkg/fs"
)

// CompressFile compresses a regular file into a GZIP file next to it:
// compressing X yields X.gz, or a disambiguated sibling when X.gz already
// exists. Content is streamed in chunk-size increments, never loaded
// whole. On any mid-operation failure every open handle is closed, the
// partially written destination is deleted, and the cause is returned
// wrapped as a compress error. A close failure after a fully streamed copy
// is a failure, not a success.
func (c *Codec) CompressFile(ctx context.Context, path string) (string, error) {
	const op = "compress file"

	kind, err := c.fs.Kind(path)
	if err != nil {
		return "", errors.NewCompressError(op, path, err)
	}
	if kind == domain.PathKindNone {
		return "", errors.NewCompressError(op, path, fmt.Errorf("source missing: %s does not exist", path))
	}
	if kind != domain.PathKindFile {
		return "", errors.NewCompressError(op, path, fmt.Errorf("source %s is a %s, not a file", path, kind))
	}

	dest, err := c.availablePath(pathfs.WithSuffix(path, domain.GzipSuffix))
	if err != nil {
		return "", errors.NewCompressError(op, path, err)
	}

	if err := c.streamCompress(ctx, path, dest); err != nil {
		c.discard(dest)
		return "", errors.NewCompressError(op, path, err)
	}

	return dest, nil
}

// UncompressFile restores a GZIP file: uncompressing X.gz yields X, or a
// disambiguated sibling when X already exists. The source must exist and
// carry exactly the gz suffix. Failure discipline matches CompressFile.
func (c *Codec) UncompressFile(ctx context.Context, path string) (string, error) {
	const op = "uncompress file"

	exists, err := c.fs.Exists(path)
	if err != nil {
		return "", errors.NewUncompressError(op, path, err)
	}
	if !exists {
		return "", errors.NewUncompressError(op, path, fmt.Errorf("source missing: %s does not exist", path))
	}

	stripped, err := pathfs.StripSuffix(path, domain.GzipSuffix)
	if err != nil {
		return "", errors.NewUncompressError(op, path, err)
	}

	dest, err := c.availablePath(stripped)
	if err != nil {
		return "", errors.NewUncompressError(op, path, err)
	}

	if err := c.streamUncompress(ctx, path, dest); err != nil {
		c.discard(dest)
		return "", errors.NewUncompressError(op, path, err)
	}

	return dest, nil
}

// streamCompress copies source through a gzip writer into dest. Handles
// are released on every exit path in reverse acquisition order; close
// errors join the operation error instead of masking it.
func (c *Codec) streamCompress(ctx context.Context, source, dest string) (err error) {
	src, err := c.fs.OpenRead(source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		err = multierr.Append(err, src.Close())
	}()

	out, err := c.fs.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	zw, err := gzip.NewWriterLevel(out, int(c.options.Level))
	if err != nil {
		return fmt.Errorf("create gzip writer: %w", err)
	}

	if pumpErr := c.pump(ctx, zw, src); pumpErr != nil {
		return multierr.Append(pumpErr, zw.Close())
	}

	// Close flushes the final block and the container trailer; its error
	// means the destination is incomplete.
	return zw.Close()
}

// streamUncompress copies dest out of a gzip reader over source. The gzip
// header is parsed before the destination is created, so a malformed
// container never leaves an empty output file behind.
func (c *Codec) streamUncompress(ctx context.Context, source, dest string) (err error) {
	src, err := c.fs.OpenRead(source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		err = multierr.Append(err, src.Close())
	}()

	zr, err := gzip.NewReader(src)
	if err != nil {
		return fmt.Errorf("read gzip container: %w", err)
	}

	out, err := c.fs.OpenAppend(dest)
	if err != nil {
		return multierr.Append(fmt.Errorf("create destination: %w", err), zr.Close())
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	// The reader verifies the trailer checksum as the stream drains; a
	// mismatch surfaces from the pump as a read error.
	if pumpErr := c.pump(ctx, out, zr); pumpErr != nil {
		return multierr.Append(pumpErr, zr.Close())
	}

	return zr.Close()
}
