package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.PreviewOpener
type Opener struct {
	run func(name string, args ...string) error
}

// NewOpener creates a new browser opener
func NewOpener() *Opener {
	return &Opener{run: func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}}
}

// OpenFile opens a local file in the system's default browser
func (o *Opener) OpenFile(path string) error {
	uri, err := BuildURI(path)
	if err != nil {
		return err
	}
	name, args, err := Command(runtime.GOOS, uri)
	if err != nil {
		return err
	}
	return o.run(name, args...)
}

// BuildURI constructs the file:// URL for a local path
func BuildURI(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	// Browsers expect forward slashes and a leading slash before drive letters
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

// Command returns the program and arguments that open uri on goos
func Command(goos, uri string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{uri}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{uri}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
