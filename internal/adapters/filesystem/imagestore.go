package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"booq/internal/domain"
	"booq/internal/ports"
)

// ExportMarker identifies marketplace image export folders by name
const ExportMarker = "-images-"

// Supported image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageStore implements ports.ImageStore on the local filesystem
type ImageStore struct {
	exclude []string
}

// NewImageStore creates an ImageStore. Directories in exclude are pruned from
// every scan, in addition to the archive and staging folders.
func NewImageStore(exclude ...string) *ImageStore {
	s := &ImageStore{}
	for _, dir := range exclude {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(ExpandHome(dir)); err == nil {
			s.exclude = append(s.exclude, abs)
		}
	}
	return s
}

var _ ports.ImageStore = (*ImageStore)(nil)

// IsImage reports whether name has a supported image extension
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ExportDir returns the newest export folder directly under root, or root
// itself when there is none.
func (s *ImageStore) ExportDir(root string) (string, []string, error) {
	root, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return "", nil, err
	}
	return SelectExportDir(root)
}

// SelectExportDir picks the most recently modified sub-folder of root whose
// name contains ExportMarker. The remaining export folders are returned as
// ignored, newest first.
func SelectExportDir(root string) (string, []string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read gallery folder: %w", err)
	}

	type candidate struct {
		path string
		mod  int64
	}
	var found []candidate
	for _, entry := range entries {
		if !entry.IsDir() || !strings.Contains(strings.ToLower(entry.Name()), ExportMarker) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{
			path: filepath.Join(root, entry.Name()),
			mod:  info.ModTime().UnixNano(),
		})
	}

	if len(found) == 0 {
		return root, nil, nil
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].mod != found[j].mod {
			return found[i].mod > found[j].mod
		}
		return found[i].path < found[j].path
	})

	ignored := make([]string, 0, len(found)-1)
	for _, c := range found[1:] {
		ignored = append(ignored, c.path)
	}
	return found[0].path, ignored, nil
}

// Scan walks root and classifies every image file. It prunes root/Sold, any
// folder named like the staging output, and the configured exclusions.
func (s *ImageStore) Scan(root string, prefixes []string) ([]domain.ImageAsset, error) {
	root, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, err
	}
	archive := filepath.Join(root, domain.ArchiveDirName)

	var assets []domain.ImageAsset
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if path == archive || d.Name() == domain.StagingDirName || s.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !IsImage(d.Name()) {
			return nil
		}
		assets = append(assets, domain.NewImageAsset(path, prefixes))
		return nil
	})
	if err != nil {
		return nil, err
	}

	domain.SortAssets(assets)
	return assets, nil
}

func (s *ImageStore) excluded(path string) bool {
	for _, dir := range s.exclude {
		if within(path, dir) {
			return true
		}
	}
	return false
}

// Delete removes a single file
func (s *ImageStore) Delete(path string) error {
	return os.Remove(path)
}

// Archive moves source to target, creating the target folder and replacing
// any file already there.
func (s *ImageStore) Archive(source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(source, target)
}
