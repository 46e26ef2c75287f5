package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded files live. Only local disk is wired;
// the interface keeps the door open for object stores.
type Storage interface {
	// Save stores a file under the given name.
	Save(ctx context.Context, name string, reader io.Reader, contentType string) error

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a file is present.
	Exists(ctx context.Context, name string) (bool, error)

	// URL returns the public URL path for a stored file.
	URL(name string) string
}

// Config holds storage configuration.
type Config struct {
	Type     string // only "local" is supported
	BasePath string
	BaseURL  string
}

// NewStorage builds a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
