package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"booq/internal/adapters/filesystem"
	"booq/internal/application"
	"booq/internal/application/commands"
	"booq/internal/domain"
)

// ErrExists is returned by WriteStarter when the target file is already there
var ErrExists = errors.New("config file already exists")

type starterFile struct {
	APIKey      string            `yaml:"api_key"`
	OrderPrefix []string          `yaml:"order_prefix,flow"`
	GalleryPath string            `yaml:"gallery_path"`
	OutputPath  string            `yaml:"output_path"`
	FallbackURL string            `yaml:"fallback_url"`
	Enrichment  starterEnrichment `yaml:"enrichment"`
	Gallery     starterGallery    `yaml:"gallery"`
}

type starterEnrichment struct {
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type starterGallery struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	HomeURL  string `yaml:"home_url"`
	ShareURL string `yaml:"share_url"`
}

var starterComments = map[string]string{
	"api_key":      "Booklooker API key (Konto > Einstellungen > API). BOOKLOOKER_API_KEY overrides it.",
	"order_prefix": "Order number prefixes of your images, e.g. BN00561.jpg",
	"gallery_path": "Folder with the image export from Booklooker",
	"output_path":  "Where index.html and images/ are written",
	"fallback_url": "Link for items without a detail page",
	"enrichment":   "Optional page listing ISBNs, detail links and descriptions",
	"gallery":      "Page title and links",
}

// StarterYAML renders the commented starter configuration
func StarterYAML() ([]byte, error) {
	page := commands.DefaultPageInfo()
	starter := starterFile{
		APIKey:      PlaceholderAPIKey,
		OrderPrefix: domain.DefaultPrefixes,
		GalleryPath: DefaultGalleryPath,
		OutputPath:  DefaultOutputPath,
		FallbackURL: domain.DefaultFallbackURL,
		Enrichment:  starterEnrichment{Enabled: true},
		Gallery: starterGallery{
			Title:    page.Title,
			Subtitle: page.Subtitle,
			HomeURL:  page.HomeURL,
			ShareURL: page.ShareURL,
		},
	}

	var doc yaml.Node
	if err := doc.Encode(starter); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if c, ok := starterComments[doc.Content[i].Value]; ok {
			doc.Content[i].HeadComment = c
		}
	}

	var buf bytes.Buffer
	buf.WriteString("# booq configuration\n\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteStarter creates a starter config at path, or at DefaultPath when path
// is empty, and returns where it was written. An existing file is never
// overwritten.
func WriteStarter(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	path = filesystem.ExpandHome(path)

	data, err := StarterYAML()
	if err != nil {
		return "", fmt.Errorf("render starter config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &application.FileSystemError{Op: "create", Path: filepath.Dir(path), Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, path)
		}
		return "", &application.FileSystemError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", &application.FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &application.FileSystemError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}
