package ports

import "booq/internal/domain"

// ImageStore defines the interface for the local gallery image folder
type ImageStore interface {
	// ExportDir picks the folder to reconcile under root: the newest
	// marketplace export folder if there is one, root itself otherwise.
	// Other export folders are returned as ignored.
	ExportDir(root string) (dir string, ignored []string, err error)

	// Scan lists image files under root, skipping the archive and output folders
	Scan(root string, prefixes []string) ([]domain.ImageAsset, error)

	// Delete removes a single file
	Delete(path string) error

	// Archive moves source to target, replacing any file already at target
	Archive(source, target string) error
}
