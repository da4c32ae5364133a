package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalPictureStorage stores profile pictures on local disk; the API
// serves the directory under the public URL.
type LocalPictureStorage struct {
	dir       string
	publicURL string
}

// NewLocalPictureStorage creates the storage directory if needed.
func NewLocalPictureStorage(dir, publicURL string) (*LocalPictureStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalPictureStorage{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Dir returns the root directory of stored objects.
func (s *LocalPictureStorage) Dir() string {
	return s.dir
}

// Put writes the object to disk and returns its public URL.
func (s *LocalPictureStorage) Put(ctx context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// Delete removes the file behind a URL returned by Put. Missing files and
// foreign URLs are ignored.
func (s *LocalPictureStorage) Delete(ctx context.Context, objectURL string) error {
	key, ok := strings.CutPrefix(objectURL, s.publicURL+"/")
	if !ok || key == "" {
		return nil
	}
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// resolve maps a key to a path inside the storage directory.
func (s *LocalPictureStorage) resolve(key string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(key)), nil
}
