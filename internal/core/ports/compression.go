package ports

// Defines the interface for in-memory compression operations.
// This allows us to swap the container implementation without changing core logic.
type CompressionPort interface {
	// Compress encodes data into a complete GZIP container at the
	// configured level. Returns the encoded bytes and any error that occurred.
	Compress(data []byte) ([]byte, error)

	// Decompress restores original data from a GZIP container.
	// Returns the decoded bytes and any error that occurred.
	Decompress(data []byte) ([]byte, error)

	// Close cleans up compression resources.
	Close() error

	// Level returns current compression level.
	Level() uint8
}
