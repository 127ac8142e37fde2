// Package archive implements the tar-archival collaborator: packing a
// directory tree into a single tar file and expanding it back. Entry names
// are stored relative to the directory root, so an archive of D expands
// into D's direct contents.
package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	pathfs "github.com/iamNilotpal/gzip/pkg/fs"
)

type TarArchiver struct{}

func NewTarArchiver() *TarArchiver {
	return &TarArchiver{}
}

// CompressDirectory packs the directory tree rooted at dir into dir+".tar"
// and returns the archive path. The archive is created exclusively; an
// existing file at the archive path is an error, never overwritten. On
// failure the partial archive is removed.
func (a *TarArchiver) CompressDirectory(ctx context.Context, dir string) (string, error) {
	archivePath := pathfs.WithSuffix(dir, domain.TarSuffix)

	out, err := os.OpenFile(archivePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create archive %s: %w", archivePath, err)
	}

	if err := a.pack(ctx, dir, out); err != nil {
		err = multierr.Append(err, out.Close())
		if removeErr := os.Remove(archivePath); removeErr != nil {
			err = multierr.Append(err, removeErr)
		}
		return "", err
	}

	if err := out.Close(); err != nil {
		os.Remove(archivePath)
		return "", fmt.Errorf("close archive %s: %w", archivePath, err)
	}

	return archivePath, nil
}

func (a *TarArchiver) pack(ctx context.Context, dir string, out io.Writer) error {
	tw := tar.NewWriter(out)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		// Only regular files and directories round-trip; sockets,
		// devices and symlinks are skipped.
		switch {
		case info.IsDir():
			header, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			header.Name = filepath.ToSlash(rel) + "/"
			return tw.WriteHeader(header)
		case info.Mode().IsRegular():
			header, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return err
			}
			header.Name = filepath.ToSlash(rel)
			if err := tw.WriteHeader(header); err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return err
			}
			if _, err := io.Copy(tw, file); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		default:
			return nil
		}
	})
	if err != nil {
		return fmt.Errorf("pack %s: %w", dir, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("pack %s: %w", dir, err)
	}
	return nil
}

// UncompressDirectory expands archive (a ".tar" file) into a directory at
// the archive path with the suffix stripped, and returns the directory
// path. Entries that would escape the destination root are rejected.
func (a *TarArchiver) UncompressDirectory(ctx context.Context, archive string) (string, error) {
	dir, err := pathfs.StripSuffix(archive, domain.TarSuffix)
	if err != nil {
		return "", err
	}

	in, err := os.Open(archive)
	if err != nil {
		return "", fmt.Errorf("open archive %s: %w", archive, err)
	}

	if err := a.unpack(ctx, in, dir); err != nil {
		return "", multierr.Append(err, in.Close())
	}

	if err := in.Close(); err != nil {
		return "", fmt.Errorf("close archive %s: %w", archive, err)
	}

	return dir, nil
}

func (a *TarArchiver) unpack(ctx context.Context, in io.Reader, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unpack into %s: %w", dir, err)
	}

	tr := tar.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unpack into %s: %w", dir, err)
		}

		target, err := sanitizePath(dir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, header.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf("unpack into %s: %w", dir, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("unpack into %s: %w", dir, err)
			}
			if err := extractFile(tr, target, header.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf("unpack into %s: %w", dir, err)
			}
		default:
			// Skip entry kinds the packer never produces.
		}
	}
}

func extractFile(tr *tar.Reader, target string, mode os.FileMode) error {
	file, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, tr); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// sanitizePath rejects archive entries whose names resolve outside dir.
func sanitizePath(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if target != dir && !strings.HasPrefix(target, dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes destination directory", name)
	}
	return target, nil
}
