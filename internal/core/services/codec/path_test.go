package codec

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzip/pkg/errors"
)

func TestCompressPathDispatchesOnKind(t *testing.T) {
	c := newTestCodec(t, smallChunks())
	ctx := context.Background()
	root := t.TempDir()

	file := filepath.Join(root, "single.txt")
	writeFile(t, file, []byte("file payload"))

	dir := filepath.Join(root, "bundle")
	writeFile(t, filepath.Join(dir, "inner.txt"), []byte("dir payload"))

	fromFile, err := c.CompressPath(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, file+".gz", fromFile)

	fromDir, err := c.CompressPath(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, dir+".tar.gz", fromDir)
}

func TestCompressPathMissing(t *testing.T) {
	c := newTestCodec(t, nil)

	_, err := c.CompressPath(context.Background(), filepath.Join(t.TempDir(), "nothing-here"))
	require.Error(t, err)
	assert.True(t, errors.IsCompressError(err))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestUncompressPathDispatchesOnSuffix(t *testing.T) {
	c := newTestCodec(t, smallChunks())
	ctx := context.Background()
	root := t.TempDir()

	file := filepath.Join(root, "single.txt")
	writeFile(t, file, []byte("file payload"))
	dir := filepath.Join(root, "bundle")
	writeFile(t, filepath.Join(dir, "inner.txt"), []byte("dir payload"))

	fileArtifact, err := c.CompressPath(ctx, file)
	require.NoError(t, err)
	dirArtifact, err := c.CompressPath(ctx, dir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(file))
	require.NoError(t, os.RemoveAll(dir))

	restoredFile, err := c.UncompressPath(ctx, fileArtifact)
	require.NoError(t, err)
	assert.Equal(t, file, restoredFile)

	restoredDir, err := c.UncompressPath(ctx, dirArtifact)
	require.NoError(t, err)
	assert.Equal(t, dir, restoredDir)

	got, err := os.ReadFile(filepath.Join(dir, "inner.txt"))
	require.NoError(t, err)
	assert.Equal(t, "dir payload", string(got))
}

func TestUncompressPathUnknownExtension(t *testing.T) {
	c := newTestCodec(t, nil)
	root := t.TempDir()

	path := filepath.Join(root, "artifact.zip")
	writeFile(t, path, []byte("zip-shaped"))

	_, err := c.UncompressPath(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownExtensionError(err))
	assert.Contains(t, err.Error(), path)
}

func TestUncompressPathGzButNotTarGzTakesFileFlow(t *testing.T) {
	c := newTestCodec(t, smallChunks())
	ctx := context.Background()
	root := t.TempDir()

	// A name merely containing "tar" must not route to the directory
	// flow: only the exact tar.gz suffix does.
	source := filepath.Join(root, "guitar")
	writeFile(t, source, []byte("six strings"))

	artifact, err := c.CompressFile(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "guitar.gz"), artifact)

	require.NoError(t, os.Remove(source))

	restored, err := c.UncompressPath(ctx, artifact)
	require.NoError(t, err)
	assert.Equal(t, source, restored)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, "six strings", string(got))
}
