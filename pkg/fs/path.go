// Package fs provides pure path helpers for deriving compressed and
// uncompressed destination names. The helpers never touch the filesystem;
// existence-aware derivation lives with the codec service.
package fs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSuffix indicates a path does not carry the suffix an operation
// requires. Callers wrap it into their own error kind.
var ErrInvalidSuffix = errors.New("invalid suffix")

// WithSuffix appends "." + suffix to a path's textual form. It performs no
// existence check.
func WithSuffix(path, suffix string) string {
	return path + "." + suffix
}

// StripSuffix removes a trailing "." + suffix from path. Suffix matching is
// exact and case-sensitive. Returns ErrInvalidSuffix (wrapped, naming the
// path and the expected suffix) if the path does not end with it.
func StripSuffix(path, suffix string) (string, error) {
	full := "." + suffix
	if !strings.HasSuffix(path, full) || len(path) == len(full) {
		return "", fmt.Errorf("%w: %s does not have the extension: %s", ErrInvalidSuffix, path, suffix)
	}
	return strings.TrimSuffix(path, full), nil
}

// HasSuffix reports whether path ends with "." + suffix. Matching is exact
// and case-sensitive, so a path ending in ".gz" but not ".tar.gz" does not
// carry the "tar.gz" suffix.
func HasSuffix(path, suffix string) bool {
	return strings.HasSuffix(path, "."+suffix)
}

// SplitSuffix splits path into its stem and a trailing "." + suffix if the
// suffix is present; otherwise it returns the whole path and "". Used to
// insert a disambiguating token before a known compressed suffix.
func SplitSuffix(path, suffix string) (stem, ext string) {
	full := "." + suffix
	if strings.HasSuffix(path, full) {
		return strings.TrimSuffix(path, full), full
	}
	return path, ""
}
