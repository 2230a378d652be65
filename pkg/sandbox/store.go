// Package sandbox provides the path-jailed file capabilities handed to the
// model. A Store binds reads and writes to one output directory per task run;
// it is the only component allowed to touch disk on the model's behalf.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scadbench/scadbench/pkg/domain"
)

// Store exposes file reads and writes restricted to a single root directory.
type Store struct {
	root string
}

// New creates a store jailed to root. The directory itself is created lazily
// on the first write.
func New(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Root returns the directory the store is bound to.
func (s *Store) Root() string {
	return s.root
}

// Resolve maps a caller-supplied relative path to an absolute path under the
// root. Absolute inputs and paths that climb out of the root are rejected
// with domain.ErrPathEscape.
func (s *Store) Resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) || filepath.IsAbs(filepath.FromSlash(rel)) {
		return "", fmt.Errorf("%w: absolute path %q not allowed", domain.ErrPathEscape, rel)
	}

	resolved := filepath.Join(s.root, filepath.FromSlash(rel))

	// Join cleans the result, so a ".." prefix on the relative form is the
	// only way left to land outside the root.
	inside, err := filepath.Rel(s.root, resolved)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q resolves outside %s", domain.ErrPathEscape, rel, s.root)
	}

	return resolved, nil
}

// ReadFile returns the full contents of a file under the root as text.
func (s *Store) ReadFile(rel string) (string, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", rel)
		}
		return "", fmt.Errorf("read %s: %w", rel, err)
	}

	return string(data), nil
}

// WriteFile writes content to a file under the root, creating parent
// directories as needed. Existing files are overwritten. Returns the number
// of bytes written.
func (s *Store) WriteFile(rel, content string) (int, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("create parent directory for %s: %w", rel, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", rel, err)
	}

	return len(content), nil
}
