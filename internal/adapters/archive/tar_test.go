package archive

import (
	"archive/tar"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDirectoryRoundTrip(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "photos")
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")
	writeFile(t, filepath.Join(dir, "nested", "deep", "b.txt"), "bravo")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

	archiver := NewTarArchiver()

	archive, err := archiver.CompressDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir+".tar", archive)

	require.NoError(t, os.RemoveAll(dir))

	restored, err := archiver.UncompressDirectory(context.Background(), archive)
	require.NoError(t, err)
	assert.Equal(t, dir, restored)

	content, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(content))

	content, err = os.ReadFile(filepath.Join(dir, "nested", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bravo", string(content))

	stat, err := os.Stat(filepath.Join(dir, "empty"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestCompressDirectoryNeverClobbersArchivePath(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "docs")
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")
	writeFile(t, dir+".tar", "someone else's file")

	archiver := NewTarArchiver()

	_, err := archiver.CompressDirectory(context.Background(), dir)
	require.Error(t, err)

	content, err := os.ReadFile(dir + ".tar")
	require.NoError(t, err)
	assert.Equal(t, "someone else's file", string(content))
}

func TestUncompressDirectoryRequiresTarSuffix(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "not-an-archive.bin")
	writeFile(t, path, "payload")

	archiver := NewTarArchiver()

	_, err := archiver.UncompressDirectory(context.Background(), path)
	assert.Error(t, err)
}

func TestUncompressDirectoryRejectsEscapingEntries(t *testing.T) {
	root := t.TempDir()
	archive := filepath.Join(root, "evil.tar")

	out, err := os.Create(archive)
	require.NoError(t, err)
	tw := tar.NewWriter(out)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0644,
		Size:     4,
	}))
	_, err = tw.Write([]byte("oops"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, out.Close())

	archiver := NewTarArchiver()

	_, err = archiver.UncompressDirectory(context.Background(), archive)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(root, "..", "escape.txt"))
}

func TestCompressDirectoryHonorsCancellation(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "docs")
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	archiver := NewTarArchiver()

	_, err := archiver.CompressDirectory(ctx, dir)
	require.Error(t, err)
	assert.NoFileExists(t, dir+".tar")
}
