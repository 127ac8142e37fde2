package domain

// Suffixes identifying the two compressed-artifact kinds. A path's
// compressed kind is determined solely by its suffix, never by content
// inspection. Matching is exact and case-sensitive; a path ending in "gz"
// but not "tar.gz" is a compressed file, not a compressed directory.
const (
	// GzipSuffix marks a single GZIP-compressed file.
	GzipSuffix = "gz"

	// TarGzipSuffix marks a GZIP-compressed tar archive, i.e. a
	// compressed directory.
	TarGzipSuffix = "tar.gz"

	// TarSuffix marks the intermediate archive a directory operation
	// produces and consumes.
	TarSuffix = "tar"
)

// Compression level bounds for the GZIP container. Level 0 stores without
// compression, 9 trades CPU for the best ratio.
const (
	StoreLevel   uint8 = 0 // No compression, store only.
	DefaultLevel uint8 = 6 // Balanced between speed and compression ratio.
	BestLevel    uint8 = 9 // Maximum compression ratio, higher CPU usage.
)

// DefaultChunkSize bounds the memory used by a single streaming copy.
// Purely a performance knob; it has no effect on the produced bytes.
const DefaultChunkSize = 512 * 1024

// CompressionOptions configures a codec instance. Immutable after
// construction; a codec built from it is safe to share across callers that
// do not target the same destination path.
type CompressionOptions struct {
	// Level is the GZIP compression level, StoreLevel through BestLevel.
	Level uint8

	// ChunkSize is the maximum number of bytes moved per read/write
	// during a streaming copy. Must be positive.
	ChunkSize int
}
