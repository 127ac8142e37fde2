package ports

import "context"

// ArchiverPort abstracts the tar-archival collaborator. The archive
// round-trips directory contents byte-for-byte and preserves the tree
// structure; the codecs do not re-validate that round-trip.
type ArchiverPort interface {
	// CompressDirectory packs the directory tree rooted at dir into a
	// single archive file and returns the archive's path.
	CompressDirectory(ctx context.Context, dir string) (string, error)

	// UncompressDirectory expands an archive file back into a directory
	// tree and returns the directory's path.
	UncompressDirectory(ctx context.Context, archive string) (string, error)
}
