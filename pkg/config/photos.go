package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// PhotoMatcher decides which files in the photo directory are offered by
// the photo picker. Patterns are compiled once and matched against base
// file names, case-sensitively, with '/' as the only separator.
type PhotoMatcher struct {
	patterns []glob.Glob
}

// NewPhotoMatcher compiles the configured filename patterns.
func NewPhotoMatcher(patterns []string) (*PhotoMatcher, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid photo pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return &PhotoMatcher{patterns: compiled}, nil
}

// Match reports whether the file name matches any configured pattern.
func (m *PhotoMatcher) Match(name string) bool {
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ListPhotos returns the matching file names in dir, sorted. Subdirectories
// are not descended into; a missing directory yields an empty list rather
// than an error so the picker can simply show nothing.
func (m *PhotoMatcher) ListPhotos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read photo directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if m.Match(e.Name()) {
			names = append(names, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}
