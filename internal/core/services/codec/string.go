package codec

import (
	"context"

	"github.com/iamNilotpal/gzip/pkg/errors"
)

// CompressString encodes data into a complete GZIP container (RFC 1952) at
// the configured level: header, compressed payload, CRC32 + length
// trailer. Any compliant tool can decode the result. The empty input
// yields a valid empty container.
func (c *Codec) CompressString(ctx context.Context, data []byte) ([]byte, error) {
	const op = "compress string"

	if err := ctx.Err(); err != nil {
		return nil, errors.NewCompressError(op, "", err)
	}

	out, err := c.memory.Compress(data)
	if err != nil {
		return nil, errors.NewCompressError(op, "", err)
	}
	return out, nil
}

// UncompressString is the exact inverse of CompressString for all inputs.
// Input that is not a well-formed GZIP container (bad magic bytes,
// truncated stream, checksum mismatch) fails with an uncompress error,
// never silently returns garbage.
func (c *Codec) UncompressString(ctx context.Context, data []byte) ([]byte, error) {
	const op = "uncompress string"

	if err := ctx.Err(); err != nil {
		return nil, errors.NewUncompressError(op, "", err)
	}

	out, err := c.memory.Decompress(data)
	if err != nil {
		return nil, errors.NewUncompressError(op, "", err)
	}
	return out, nil
}
