package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

// imageExtensions maps accepted sniffed MIME types to the stored file
// extension. Anything else is rejected regardless of the client's claims.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type UploadService struct {
	store    storage.Storage
	maxBytes int64
}

func NewUploadService(store storage.Storage, maxBytes int64) *UploadService {
	return &UploadService{store: store, maxBytes: maxBytes}
}

// SaveImage reads, sniffs and stores an uploaded image, returning its
// public URL. The name embeds the owner's ID plus a random suffix so
// uploads never collide or get guessed.
func (s *UploadService) SaveImage(ctx context.Context, userID uint, r io.Reader) (string, error) {
	// Read one byte past the cap to tell "exactly at the limit" from over.
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperrors.ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	ext, ok := imageExtensions[mtype.String()]
	if !ok {
		return "", apperrors.ErrInvalidFileType
	}

	suffix, err := randomSuffix()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	name := fmt.Sprintf("%d_%s.%s", userID, suffix, ext)

	if err := s.store.Save(ctx, name, bytes.NewReader(data), mtype.String()); err != nil {
		return "", apperrors.InternalError(err)
	}
	return s.store.URL(name), nil
}

func randomSuffix() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
