package ports

// OutputWriter defines the interface for materializing a rendered gallery
type OutputWriter interface {
	EnsureDir(dir string) error

	// ReplaceDir removes dir with all its contents and recreates it empty
	ReplaceDir(dir string) error

	// WriteFile overwrites path unconditionally
	WriteFile(path string, data []byte) error

	// CopyIfNewer copies source to target unless target exists and is at least
	// as new as source. It reports whether a copy happened.
	CopyIfNewer(source, target string) (bool, error)
}
