package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// ErrInvalidKey reports a storage key that would escape the upload directory.
var ErrInvalidKey = errors.New("invalid photo storage key")

// Store keeps uploaded animal photos on the local filesystem. Keys are
// generated by the caller; client-supplied filenames never become paths.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates the upload directory if needed and returns the store.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory served under /uploads.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes photo bytes under the given key, replacing any previous content.
func (s *Store) Save(ctx context.Context, key string, r io.Reader) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write photo file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close photo file: %w", err)
	}
	return nil
}

// Remove deletes the stored file. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove photo file: %w", err)
	}
	return nil
}

// List returns all stored files with their modification times.
func (s *Store) List(ctx context.Context) ([]repository.StoredPhoto, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	var photos []repository.StoredPhoto
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		photos = append(photos, repository.StoredPhoto{Key: entry.Name(), ModTime: info.ModTime()})
	}
	return photos, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, key), nil
}
