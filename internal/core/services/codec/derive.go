package codec

import (
	"fmt"

	"github.com/iamNilotpal/gzip/internal/core/domain"
	pathfs "github.com/iamNilotpal/gzip/pkg/fs"
)

// maxNameAttempts bounds collision resolution so a pathological directory
// cannot spin availablePath forever.
const maxNameAttempts = 10000

// availablePath returns candidate unchanged when nothing exists at it.
// Otherwise a counter token is inserted before the candidate's compressed
// suffix ("X.gz" becomes "X-1.gz", "D.tar.gz" becomes "D-1.tar.gz") until
// an unused name is found, so an earlier output is never overwritten and a
// disambiguated artifact still uncompresses with the regular flow.
//
// Resolution is check-then-use: two concurrent operations racing on the
// same destination can observe the same available name. Single writer per
// destination path is the caller's contract.
func (c *Codec) availablePath(candidate string) (string, error) {
	exists, err := c.fs.Exists(candidate)
	if err != nil {
		return "", err
	}
	if !exists {
		return candidate, nil
	}

	stem, ext := splitCompressedSuffix(candidate)
	for n := 1; n <= maxNameAttempts; n++ {
		next := fmt.Sprintf("%s-%d%s", stem, n, ext)
		exists, err := c.fs.Exists(next)
		if err != nil {
			return "", err
		}
		if !exists {
			return next, nil
		}
	}

	return "", fmt.Errorf("no available path near %s after %d attempts", candidate, maxNameAttempts)
}

// splitCompressedSuffix splits off a trailing compressed suffix when the
// path carries one. Longest suffix wins, so "D.tar.gz" splits before
// ".tar.gz", never before ".gz".
func splitCompressedSuffix(path string) (string, string) {
	for _, suffix := range []string{domain.TarGzipSuffix, domain.GzipSuffix, domain.TarSuffix} {
		if stem, ext := pathfs.SplitSuffix(path, suffix); ext != "" {
			return stem, ext
		}
	}
	return path, ""
}
