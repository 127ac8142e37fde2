package codec

import (
	"context"
	"fmt"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/pkg/errors"
	pathfs "github.com/iamNilotpal/gzip/pkg/fs"
)

// CompressDirectory compresses a directory tree: the tar collaborator
// packs D into the intermediate archive D.tar, the file flow compresses
// the archive into D.tar.gz, and the intermediate archive is deleted. The
// result is byte-identical to gzip over a conventional tar archive and
// interoperates with any standard tar/gzip toolchain. Archive deletion is
// best-effort: a deletion failure is logged but does not invalidate the
// already-produced result.
func (c *Codec) CompressDirectory(ctx context.Context, path string) (string, error) {
	const op = "compress directory"

	kind, err := c.fs.Kind(path)
	if err != nil {
		return "", errors.NewCompressError(op, path, err)
	}
	if kind == domain.PathKindNone {
		return "", errors.NewCompressError(op, path, fmt.Errorf("source missing: %s does not exist", path))
	}
	if kind != domain.PathKindDirectory {
		return "", errors.NewCompressError(op, path, fmt.Errorf("source %s is a %s, not a directory", path, kind))
	}

	archive, err := c.archiver.CompressDirectory(ctx, path)
	if err != nil {
		return "", errors.NewCompressError(op, path, err)
	}

	dest, err := c.CompressFile(ctx, archive)
	if err != nil {
		c.deleteIntermediate(archive)
		// Already a compress error from the file flow.
		return "", err
	}

	c.deleteIntermediate(archive)
	return dest, nil
}

// UncompressDirectory restores a directory tree from a tar.gz file: the
// file flow recovers the intermediate archive D.tar, the tar collaborator
// expands it into D, and the archive is deleted. The source must exist and
// carry exactly the tar.gz suffix; a path ending only in gz is rejected
// here, naming both the path and the expected suffix.
func (c *Codec) UncompressDirectory(ctx context.Context, path string) (string, error) {
	const op = "uncompress directory"

	exists, err := c.fs.Exists(path)
	if err != nil {
		return "", errors.NewUncompressError(op, path, err)
	}
	if !exists {
		return "", errors.NewUncompressError(op, path, fmt.Errorf("source missing: %s does not exist", path))
	}

	if !pathfs.HasSuffix(path, domain.TarGzipSuffix) {
		return "", errors.NewUncompressError(
			op, path,
			fmt.Errorf("%s does not have the extension: %s", path, domain.TarGzipSuffix),
		)
	}

	archive, err := c.UncompressFile(ctx, path)
	if err != nil {
		// Already an uncompress error from the file flow.
		return "", err
	}

	// Remember whether the expansion target existed beforehand: a tree
	// the failed expansion created is removed wholesale, a preexisting
	// one is never touched.
	target, targetErr := pathfs.StripSuffix(archive, domain.TarSuffix)
	targetExisted := true
	if targetErr == nil {
		if exists, existsErr := c.fs.Exists(target); existsErr == nil {
			targetExisted = exists
		}
	}

	dir, err := c.archiver.UncompressDirectory(ctx, archive)
	if err != nil {
		if targetErr == nil && !targetExisted {
			c.discardTree(target)
		}
		c.deleteIntermediate(archive)
		return "", errors.NewUncompressError(op, path, err)
	}

	c.deleteIntermediate(archive)
	return dir, nil
}

// deleteIntermediate removes an intermediate tar archive. Best-effort;
// failures are logged so they never mask the operation's outcome.
func (c *Codec) deleteIntermediate(archive string) {
	if err := c.fs.DeleteFile(archive); err != nil {
		c.logger.Warnw("failed to delete intermediate archive", "archive", archive, "error", err)
	}
}
