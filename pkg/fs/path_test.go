package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "/tmp/file.txt.gz", WithSuffix("/tmp/file.txt", "gz"))
	assert.Equal(t, "/tmp/photos.tar.gz", WithSuffix("/tmp/photos.tar", "gz"))
	assert.Equal(t, "/tmp/photos.tar", WithSuffix("/tmp/photos", "tar"))
}

func TestStripSuffix(t *testing.T) {
	stripped, err := StripSuffix("/tmp/file.txt.gz", "gz")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/file.txt", stripped)

	stripped, err = StripSuffix("/tmp/photos.tar.gz", "tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/photos", stripped)
}

func TestStripSuffixRejectsWrongSuffix(t *testing.T) {
	_, err := StripSuffix("/tmp/file.txt", "gz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSuffix))
	assert.Contains(t, err.Error(), "/tmp/file.txt")
	assert.Contains(t, err.Error(), "gz")

	// Suffix match is exact, not substring: "gz" alone is not ".gz".
	_, err = StripSuffix(".gz", "gz")
	assert.True(t, errors.Is(err, ErrInvalidSuffix))
}

func TestStripSuffixIsCaseSensitive(t *testing.T) {
	_, err := StripSuffix("/tmp/file.GZ", "gz")
	assert.True(t, errors.Is(err, ErrInvalidSuffix))
}

func TestHasSuffix(t *testing.T) {
	assert.True(t, HasSuffix("/tmp/a.gz", "gz"))
	assert.True(t, HasSuffix("/tmp/a.tar.gz", "tar.gz"))
	assert.True(t, HasSuffix("/tmp/a.tar.gz", "gz"))
	assert.False(t, HasSuffix("/tmp/a.gz", "tar.gz"))
	assert.False(t, HasSuffix("/tmp/agz", "gz"))
}

func TestSplitSuffix(t *testing.T) {
	stem, ext := SplitSuffix("/tmp/a.tar.gz", "tar.gz")
	assert.Equal(t, "/tmp/a", stem)
	assert.Equal(t, ".tar.gz", ext)

	stem, ext = SplitSuffix("/tmp/a", "gz")
	assert.Equal(t, "/tmp/a", stem)
	assert.Equal(t, "", ext)
}
