package compression

import (
	"bytes"
	stdgzip "compress/gzip"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzip/pkg/errors"
)

func newCompression(t *testing.T, level uint8) *GzipCompression {
	t.Helper()

	g, err := NewGzipCompression(Options{Level: level, ChunkSize: 1024})
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })

	return g
}

func TestRoundTrip(t *testing.T) {
	g := newCompression(t, 6)

	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("I solemnly swear that I am up to no good"),
		bytes.Repeat([]byte("compressible payload "), 100_000),
	}

	for _, input := range inputs {
		compressed, err := g.Compress(input)
		require.NoError(t, err)

		restored, err := g.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, input, restored)
	}
}

func TestCompressChangesNonTrivialInput(t *testing.T) {
	g := newCompression(t, 6)

	input := bytes.Repeat([]byte("some mixed text content\n"), 256)
	compressed, err := g.Compress(input)
	require.NoError(t, err)

	assert.NotEqual(t, input, compressed)
	assert.Less(t, len(compressed), len(input))
}

func TestCompressProducesInteroperableContainer(t *testing.T) {
	g := newCompression(t, 9)

	input := []byte("interoperability matters more than ratio")
	compressed, err := g.Compress(input)
	require.NoError(t, err)

	// RFC 1952 magic bytes, then decodable by the standard library.
	require.GreaterOrEqual(t, len(compressed), 2)
	assert.Equal(t, byte(0x1f), compressed[0])
	assert.Equal(t, byte(0x8b), compressed[1])

	zr, err := stdgzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	restored, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, input, restored)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	g := newCompression(t, 6)

	_, err := g.Decompress([]byte("definitely not a gzip stream"))
	assert.Error(t, err)
}

func TestDecompressRejectsTruncatedStream(t *testing.T) {
	g := newCompression(t, 6)

	compressed, err := g.Compress(bytes.Repeat([]byte("x"), 4096))
	require.NoError(t, err)

	_, err = g.Decompress(compressed[:len(compressed)/2])
	assert.Error(t, err)
}

func TestStoreLevelRoundTrips(t *testing.T) {
	g := newCompression(t, 0)

	input := []byte("stored, not squeezed")
	compressed, err := g.Compress(input)
	require.NoError(t, err)

	restored, err := g.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, input, restored)
}

func TestNewGzipCompressionValidatesOptions(t *testing.T) {
	_, err := NewGzipCompression(Options{Level: 10, ChunkSize: 1024})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewGzipCompression(Options{Level: 6, ChunkSize: 0})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCompressAfterCloseFails(t *testing.T) {
	g, err := NewGzipCompression(Options{Level: 6, ChunkSize: 1024})
	require.NoError(t, err)
	require.NoError(t, g.Close())

	_, err = g.Compress([]byte("too late"))
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	g := newCompression(t, 3)
	assert.Equal(t, uint8(3), g.Level())
}
