package codec

import (
	"context"
	"fmt"
	"io"
)

// pump streams chunks of at most the configured chunk size from src to dst
// until end-of-stream, writing each chunk verbatim in order. The pump is
// codec-agnostic: compression wraps dst in a gzip writer, decompression
// wraps src in a gzip reader, and the loop is identical either way.
// Cancellation is checked between chunks and surfaces as a normal failure.
func (c *Codec) pump(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := c.chunks.Get()
	defer c.chunks.Put(buf)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write chunk: %w", writeErr)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read chunk: %w", readErr)
		}
	}
}
