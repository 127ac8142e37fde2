// Package compression provides in-memory data compression using the GZIP
// container format (RFC 1952). It offers a thread-safe implementation with
// a configurable compression level; output interoperates with any compliant
// gzip tool.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/iamNilotpal/gzip/internal/core/domain"
)

type Options struct {
	Level     uint8
	ChunkSize int
}

// GzipCompression implements CompressionPort using the GZIP container
// format. It provides thread-safe compression and decompression of whole
// byte buffers with a configurable compression level. The writer is reused
// across calls via Reset; both operations are exact inverses for every
// input, including the empty buffer.
type GzipCompression struct {
	level  uint8        // Current compression level (0-9).
	mu     sync.Mutex   // Serializes access to the reusable writer.
	writer *gzip.Writer // Reusable encoder instance.
	closed bool         // Set once Close has released the encoder.
}

// NewGzipCompression creates a new GZIP compression instance with the
// specified level. The compression level must be between StoreLevel (0)
// and BestLevel (9).
//
// Returns an error if:
// - The compression level is invalid
// - The encoder initialization fails
func NewGzipCompression(opts Options) (*GzipCompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Level:     opts.Level,
			ChunkSize: opts.ChunkSize,
		},
	); err != nil {
		return nil, err
	}

	writer, err := gzip.NewWriterLevel(io.Discard, int(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	return &GzipCompression{writer: writer, level: opts.Level}, nil
}

// Compress encodes the input into a complete GZIP container: header,
// level-compressed payload, and the CRC32 + length trailer. The empty
// input produces a valid empty container.
func (g *GzipCompression) Compress(data []byte) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, fmt.Errorf("compression instance is closed")
	}

	var buf bytes.Buffer
	g.writer.Reset(&buf)

	if _, err := g.writer.Write(data); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	if err := g.writer.Close(); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress restores the original data from its compressed form.
//
// Returns an error if:
// - The input is not a well-formed GZIP container (bad magic bytes,
//   truncated stream, or checksum mismatch)
// - Decompression fails for any other reason
func (g *GzipCompression) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		reader.Close()
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (g *GzipCompression) Level() uint8 {
	return g.level
}

// Close releases the reusable encoder. After closing, the instance cannot
// be used for compression.
func (g *GzipCompression) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}

	g.closed = true
	g.writer.Reset(io.Discard)
	if err := g.writer.Close(); err != nil {
		return fmt.Errorf("error closing encoder: %w", err)
	}

	return nil
}
