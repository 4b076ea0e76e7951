// Package storage keeps uploaded media files on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// CategoryFolder holds the banner and thumbnail files uploaded for categories.
const CategoryFolder = "category"

// LocalStore saves files below Dir and serves them under BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

// NewLocalStore creates the media directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes r to folder under a fresh unique name that keeps the extension
// of filename, and returns the media path relative to Dir.
func (s *LocalStore) Save(folder, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	rel := path.Join(folder, uuid.New().String()+ext)

	full := filepath.Join(s.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media folder: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close media file: %w", err)
	}
	return rel, nil
}

// Remove deletes a previously saved file. Empty paths, absolute URLs and
// missing files are ignored.
func (s *LocalStore) Remove(rel string) error {
	if !IsLocal(rel) {
		return nil
	}
	clean := path.Clean("/" + rel)[1:]
	if err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(clean))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file %s: %w", rel, err)
	}
	return nil
}

// IsLocal reports whether ref points into the media directory rather than
// being empty or an external URL.
func IsLocal(ref string) bool {
	if ref == "" {
		return false
	}
	return !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") && !strings.HasPrefix(ref, "/")
}

// InFolder reports whether ref is a local media path below folder.
func InFolder(ref, folder string) bool {
	return IsLocal(ref) && strings.HasPrefix(path.Clean(ref), folder+"/")
}
