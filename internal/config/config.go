package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"booq/internal/adapters/filesystem"
	"booq/internal/application"
	"booq/internal/application/commands"
	"booq/internal/domain"
)

const (
	DefaultGalleryPath = "~/Downloads"
	DefaultOutputPath  = "~/Downloads/gallery-output"

	// PlaceholderAPIKey is written by WriteStarter and rejected by Validate
	PlaceholderAPIKey = "YOUR_BOOKLOOKER_API_KEY"
)

// Config holds the settings of a gallery sync, merged from flags,
// environment, .env files, the config file and defaults.
type Config struct {
	APIKey      string
	Prefixes    []string
	GalleryPath string
	OutputPath  string
	FallbackURL string
	Enrichment  EnrichmentConfig
	Gallery     PageConfig

	// File is the config file that was read, empty when none was found
	File string
}

// EnrichmentConfig configures the optional listing page
type EnrichmentConfig struct {
	URL     string
	Enabled bool
}

// PageConfig is the chrome of the published page
type PageConfig struct {
	Title    string
	Subtitle string
	HomeURL  string
	ShareURL string
}

// DefaultPath returns ~/.config/booq/config.yaml
func DefaultPath() string {
	return filesystem.ExpandHome("~/.config/booq/config.yaml")
}

// SearchPaths lists the config files tried, in order, when none is given
func SearchPaths() []string {
	return []string{DefaultPath(), filesystem.ExpandHome("~/.booq.yaml")}
}

// Load builds the configuration. configFile, when set, must exist; otherwise
// the first existing file of SearchPaths is used, if any.
//
// Precedence: environment (BOOQ_*, BOOKLOOKER_API_KEY) > .env.local > .env >
// config file > defaults. Flags are applied by the caller afterwards.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOOQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api_key", "BOOQ_API_KEY", "BOOKLOOKER_API_KEY")

	file := configFile
	if file == "" {
		file = findConfigFile()
	}
	if file != "" {
		v.SetConfigFile(filesystem.ExpandHome(file))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, &application.ConfigError{
				Field:   "file",
				Message: fmt.Sprintf("cannot read %s: %v", file, err),
			}
		}
	}

	prefixes, err := stringList(v.Get("order_prefix"))
	if err != nil {
		return nil, err
	}
	for i, p := range prefixes {
		prefixes[i] = strings.ToUpper(p)
	}

	cfg := &Config{
		APIKey:      strings.TrimSpace(v.GetString("api_key")),
		Prefixes:    prefixes,
		GalleryPath: filesystem.ExpandHome(v.GetString("gallery_path")),
		OutputPath:  filesystem.ExpandHome(v.GetString("output_path")),
		FallbackURL: v.GetString("fallback_url"),
		Enrichment: EnrichmentConfig{
			URL:     v.GetString("enrichment.url"),
			Enabled: v.GetBool("enrichment.enabled"),
		},
		Gallery: PageConfig{
			Title:    v.GetString("gallery.title"),
			Subtitle: v.GetString("gallery.subtitle"),
			HomeURL:  v.GetString("gallery.home_url"),
			ShareURL: v.GetString("gallery.share_url"),
		},
		File: v.ConfigFileUsed(),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	page := commands.DefaultPageInfo()
	v.SetDefault("order_prefix", domain.DefaultPrefixes)
	v.SetDefault("gallery_path", DefaultGalleryPath)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("fallback_url", domain.DefaultFallbackURL)
	v.SetDefault("enrichment.url", "")
	v.SetDefault("enrichment.enabled", true)
	v.SetDefault("gallery.title", page.Title)
	v.SetDefault("gallery.subtitle", page.Subtitle)
	v.SetDefault("gallery.home_url", page.HomeURL)
	v.SetDefault("gallery.share_url", page.ShareURL)
}

// loadEnvFiles loads .env.local then .env from the working directory.
// godotenv never overrides variables already set, so .env.local wins.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func findConfigFile() string {
	for _, path := range SearchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// stringList accepts a YAML list or a comma separated string
func stringList(raw any) ([]string, error) {
	var parts []string
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		parts = strings.Split(val, ",")
	case []string:
		parts = val
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		return nil, &application.ConfigError{
			Field:   "order_prefix",
			Message: fmt.Sprintf("expected a list or comma separated string, got %T", raw),
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// ApplyFlags overrides paths given on the command line
func (c *Config) ApplyFlags(galleryPath, outputPath string) {
	if galleryPath != "" {
		c.GalleryPath = filesystem.ExpandHome(galleryPath)
	}
	if outputPath != "" {
		c.OutputPath = filesystem.ExpandHome(outputPath)
	}
}

// Validate checks the settings a sync cannot run without
func (c *Config) Validate() error {
	if c.APIKey == "" || c.APIKey == PlaceholderAPIKey {
		return &application.ConfigError{
			Field:   "api_key",
			Message: "API key is missing, set BOOKLOOKER_API_KEY or edit " + c.fileHint(),
		}
	}
	if err := application.ValidatePrefixes(c.Prefixes); err != nil {
		return err
	}
	if err := application.ValidateRequired("gallery_path", c.GalleryPath); err != nil {
		return err
	}
	return application.ValidateRequired("output_path", c.OutputPath)
}

func (c *Config) fileHint() string {
	if c.File != "" {
		return c.File
	}
	return DefaultPath() + " (booq-cli init creates it)"
}

// Warnings returns problems that do not stop a sync
func (c *Config) Warnings() []string {
	var warnings []string
	for _, pair := range application.OverlappingPrefixes(c.Prefixes) {
		warnings = append(warnings, fmt.Sprintf("prefix %s overlaps %s; the first configured wins", pair[0], pair[1]))
	}
	if c.Enrichment.Enabled && c.Enrichment.URL == "" {
		warnings = append(warnings, "enrichment is enabled but enrichment.url is empty")
	}
	return warnings
}

// PageInfo returns the page chrome for rendering
func (c *Config) PageInfo() commands.PageInfo {
	return commands.PageInfo{
		Title:    c.Gallery.Title,
		Subtitle: c.Gallery.Subtitle,
		HomeURL:  c.Gallery.HomeURL,
		ShareURL: c.Gallery.ShareURL,
	}
}

// ToSyncOptions converts the configuration for commands.NewSyncCommand
func (c *Config) ToSyncOptions() commands.SyncOptions {
	return commands.SyncOptions{
		APIKey:            c.APIKey,
		Prefixes:          c.Prefixes,
		GalleryPath:       c.GalleryPath,
		OutputPath:        c.OutputPath,
		FallbackURL:       c.FallbackURL,
		EnrichmentURL:     c.Enrichment.URL,
		EnrichmentEnabled: c.Enrichment.Enabled,
		Page:              c.PageInfo(),
	}
}
