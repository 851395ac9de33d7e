// Package storage persists attachment blobs on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// allowedExtensions is the upload allow-list. Anything else is rejected
// before a byte is written.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"pdf":  true,
	"txt":  true,
	"log":  true,
	"zip":  true,
}

var (
	unsafeChars     = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	collapseRepeats = regexp.MustCompile(`_{2,}`)
)

// LocalStore writes attachment blobs beneath a single directory. Stored
// names are sanitized and deduplicated, so a stored path can never escape
// the root.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

// AllowedExtension reports whether filename carries an allow-listed
// extension.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return allowedExtensions[ext]
}

// SanitizeFilename reduces a client-supplied filename to a safe base name:
// no directory components, no ambiguous characters, never empty or
// dot-only.
func SanitizeFilename(filename string) string {
	// Strip any directory part, whichever separator the client used.
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))

	name = unsafeChars.ReplaceAllString(name, "_")
	name = collapseRepeats.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")

	if name == "" {
		name = "file"
	}
	return name
}

// Save writes the content under a sanitized, collision-safe name and returns
// the stored name and the absolute path.
func (s *LocalStore) Save(filename string, content io.Reader) (string, string, error) {
	if !AllowedExtension(filename) {
		ext := strings.TrimPrefix(filepath.Ext(filename), ".")
		return "", "", fmt.Errorf("extension %q is not allowed", ext)
	}

	name := SanitizeFilename(filename)
	name = s.dedupe(name)

	path := filepath.Join(s.root, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write attachment file: %w", err)
	}

	return name, path, nil
}

// Open returns a reader for a previously stored blob.
func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment file: %w", err)
	}
	return f, nil
}

// Remove deletes a stored blob. Missing files are not an error; cascade
// deletes are best-effort on the blob side.
func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}

// dedupe appends -1, -2, ... before the extension until the name is free.
func (s *LocalStore) dedupe(name string) string {
	if _, err := os.Stat(filepath.Join(s.root, name)); os.IsNotExist(err) {
		return name
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(filepath.Join(s.root, candidate)); os.IsNotExist(err) {
			return candidate
		}
	}
}
