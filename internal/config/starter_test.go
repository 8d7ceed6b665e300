package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"booq/internal/domain"
)

func TestStarterYAML(t *testing.T) {
	data, err := StarterYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"# booq configuration",
		"api_key: " + PlaceholderAPIKey,
		"order_prefix: [BN, BLX]",
		"# Folder with the image export",
		"enrichment:",
		"  enabled: true",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("StarterYAML() missing %q:\n%s", want, text)
		}
	}
}

func TestWriteStarter(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "booq", "config.yaml")

	got, err := WriteStarter("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("WriteStarter() = %q, expected %q", got, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("starter not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, expected 600", perm)
	}

	// The starter loads back with defaults and fails validation on the key
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Prefixes, domain.DefaultPrefixes) {
		t.Errorf("Prefixes = %v", cfg.Prefixes)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Validate() = %v, expected error naming %s", err, path)
	}
}

func TestWriteStarter_RefusesOverwrite(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "booq.yaml")
	writeFile(t, path, "api_key: keep-me\n")

	_, err := WriteStarter(path)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("WriteStarter() = %v, expected ErrExists", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "api_key: keep-me\n" {
		t.Errorf("existing file changed: %q", data)
	}
}
