package domain

// PathKind is the closed variant the filesystem collaborator resolves a
// path into. Dispatch matches it exhaustively; "does not exist" is an
// explicit case, never a fall-through.
type PathKind int

const (
	// PathKindNone indicates the path does not exist.
	PathKindNone PathKind = iota

	// PathKindFile indicates the path denotes a regular file.
	PathKindFile

	// PathKindDirectory indicates the path denotes a directory.
	PathKindDirectory
)

// String returns the string representation of the path kind.
func (k PathKind) String() string {
	switch k {
	case PathKindFile:
		return "file"
	case PathKindDirectory:
		return "directory"
	default:
		return "none"
	}
}
