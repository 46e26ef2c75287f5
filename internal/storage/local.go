package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploads on the local filesystem. Names are always
// flattened to their base component so a crafted name cannot escape the
// upload directory.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "uploads"
	}
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  cfg.BaseURL,
	}, nil
}

func (s *LocalStorage) fullPath(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}

// Save writes the file to disk.
func (s *LocalStorage) Save(ctx context.Context, name string, reader io.Reader, contentType string) error {
	file, err := os.Create(s.fullPath(name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes the file; missing files are fine.
func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	if err := os.Remove(s.fullPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks for the file on disk.
func (s *LocalStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.fullPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// URL returns the public path for the file.
func (s *LocalStorage) URL(name string) string {
	if s.baseURL == "" {
		return "/uploads/" + filepath.Base(name)
	}
	return s.baseURL + "/" + filepath.Base(name)
}
