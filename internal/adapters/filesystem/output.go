package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"booq/internal/ports"
)

// OutputTree implements ports.OutputWriter on the local filesystem
type OutputTree struct{}

// NewOutputTree creates a new OutputTree
func NewOutputTree() *OutputTree {
	return &OutputTree{}
}

var _ ports.OutputWriter = (*OutputTree)(nil)

// EnsureDir creates dir and its parents
func (o *OutputTree) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// ReplaceDir removes dir entirely and recreates it empty
func (o *OutputTree) ReplaceDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// WriteFile writes data to a temporary file next to path and renames it
// into place, so readers never see a half-written file.
func (o *OutputTree) WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// CopyIfNewer copies source to target unless target is at least as new.
// The copy keeps the source's modification time.
func (o *OutputTree) CopyIfNewer(source, target string) (bool, error) {
	src, err := os.Stat(source)
	if err != nil {
		return false, err
	}
	if dst, err := os.Stat(target); err == nil && !dst.ModTime().Before(src.ModTime()) {
		return false, nil
	}

	if err := copyFile(source, target); err != nil {
		return false, err
	}
	if err := os.Chtimes(target, src.ModTime(), src.ModTime()); err != nil {
		return false, err
	}
	return true, nil
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
