package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"booq/internal/domain"
	"booq/internal/ports"
)

type fakeCatalog struct {
	token    string
	authErr  error
	keys     []string
	keysErr  error
	prices   []string
	priceErr error
	ids      []string
	idErr    error
	calls    []string
}

func (f *fakeCatalog) Authenticate(ctx context.Context, apiKey string) (string, error) {
	f.calls = append(f.calls, "auth")
	if f.authErr != nil {
		return "", f.authErr
	}
	return f.token, nil
}

func (f *fakeCatalog) ListActiveKeys(ctx context.Context, token string) ([]string, error) {
	f.calls = append(f.calls, "keys")
	return f.keys, f.keysErr
}

func (f *fakeCatalog) ListField(ctx context.Context, token string, q ports.FieldQuery) ([]string, error) {
	if q.ShowPrice {
		f.calls = append(f.calls, "prices")
		return f.prices, f.priceErr
	}
	f.calls = append(f.calls, q.Field)
	return f.ids, f.idErr
}

type fakeEnricher struct {
	index domain.EnrichmentIndex
	err   error
	urls  []string
}

func (f *fakeEnricher) Listings(ctx context.Context, url string) (domain.EnrichmentIndex, error) {
	f.urls = append(f.urls, url)
	return f.index, f.err
}

// memoryStore is an in-memory gallery folder
type memoryStore struct {
	files   map[string]bool
	exports []string
	failOn  string
	ops     []string
}

func newMemoryStore(paths ...string) *memoryStore {
	s := &memoryStore{files: map[string]bool{}}
	for _, p := range paths {
		s.files[p] = true
	}
	return s
}

func (s *memoryStore) ExportDir(root string) (string, []string, error) {
	if len(s.exports) == 0 {
		return root, nil, nil
	}
	return s.exports[0], s.exports[1:], nil
}

func (s *memoryStore) Scan(root string, prefixes []string) ([]domain.ImageAsset, error) {
	var assets []domain.ImageAsset
	archive := filepath.Join(root, domain.ArchiveDirName) + string(filepath.Separator)
	for p := range s.files {
		if !strings.HasPrefix(p, root+string(filepath.Separator)) || strings.HasPrefix(p, archive) {
			continue
		}
		assets = append(assets, domain.NewImageAsset(p, prefixes))
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Path < assets[j].Path })
	return assets, nil
}

func (s *memoryStore) Delete(path string) error {
	s.ops = append(s.ops, "delete "+filepath.Base(path))
	if path == s.failOn {
		return errors.New("permission denied")
	}
	if !s.files[path] {
		return fmt.Errorf("%s: no such file", path)
	}
	delete(s.files, path)
	return nil
}

func (s *memoryStore) Archive(source, target string) error {
	s.ops = append(s.ops, "archive "+filepath.Base(source))
	if source == s.failOn {
		return errors.New("permission denied")
	}
	if !s.files[source] {
		return fmt.Errorf("%s: no such file", source)
	}
	delete(s.files, source)
	s.files[target] = true
	return nil
}

// memoryWriter records output operations
type memoryWriter struct {
	dirs    []string
	written map[string][]byte
	copies  map[string]string
	fresh   map[string]bool // targets considered up to date
	failOn  string
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{
		written: map[string][]byte{},
		copies:  map[string]string{},
		fresh:   map[string]bool{},
	}
}

func (w *memoryWriter) EnsureDir(dir string) error {
	w.dirs = append(w.dirs, "ensure "+dir)
	return nil
}

func (w *memoryWriter) ReplaceDir(dir string) error {
	w.dirs = append(w.dirs, "replace "+dir)
	return nil
}

func (w *memoryWriter) WriteFile(path string, data []byte) error {
	if path == w.failOn {
		return errors.New("disk full")
	}
	w.written[path] = data
	return nil
}

func (w *memoryWriter) CopyIfNewer(source, target string) (bool, error) {
	if source == w.failOn {
		return false, errors.New("read error")
	}
	if w.fresh[target] {
		return false, nil
	}
	w.copies[target] = source
	return true, nil
}

// recordingReporter keeps every line for assertions
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) add(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Info(format string, args ...any)    { r.add("info", format, args...) }
func (r *recordingReporter) Success(format string, args ...any) { r.add("ok", format, args...) }
func (r *recordingReporter) Warn(format string, args ...any)    { r.add("warn", format, args...) }
func (r *recordingReporter) Error(format string, args ...any)   { r.add("error", format, args...) }

func (r *recordingReporter) has(level, substr string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, level+" ") && contains(l, substr) {
			return true
		}
	}
	return false
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
