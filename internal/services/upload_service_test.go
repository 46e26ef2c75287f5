package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/pkg/apperrors"
)

// memStorage records what Save received.
type memStorage struct {
	saved map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{saved: make(map[string][]byte)}
}

func (m *memStorage) Save(_ context.Context, name string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.saved[name] = data
	return nil
}

func (m *memStorage) Delete(_ context.Context, name string) error {
	delete(m.saved, name)
	return nil
}

func (m *memStorage) Exists(_ context.Context, name string) (bool, error) {
	_, ok := m.saved[name]
	return ok, nil
}

func (m *memStorage) URL(name string) string {
	return "/uploads/" + name
}

// Minimal but structurally valid headers; sniffing only needs the magic.
var (
	pngBytes  = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 64)...)
)

func TestSaveImage_PNG(t *testing.T) {
	t.Parallel()

	store := newMemStorage()
	svc := NewUploadService(store, 1<<20)

	url, err := svc.SaveImage(context.Background(), 7, bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/7_"), "url %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "url %q", url)
	require.Len(t, store.saved, 1)
	for _, data := range store.saved {
		assert.Equal(t, pngBytes, data)
	}
}

func TestSaveImage_JPEGExtension(t *testing.T) {
	t.Parallel()

	svc := NewUploadService(newMemStorage(), 1<<20)
	url, err := svc.SaveImage(context.Background(), 1, bytes.NewReader(jpegBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "jpeg stores as .jpg, got %q", url)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	t.Parallel()

	svc := NewUploadService(newMemStorage(), 1<<20)

	// A text file renamed to .jpg would arrive as exactly these bytes;
	// content sniffing must reject it.
	_, err := svc.SaveImage(context.Background(), 1, strings.NewReader("hello, definitely not an image"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestSaveImage_RejectsOversize(t *testing.T) {
	t.Parallel()

	store := newMemStorage()
	svc := NewUploadService(store, 16) // tiny ceiling

	_, err := svc.SaveImage(context.Background(), 1, bytes.NewReader(pngBytes))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, store.saved)
}

func TestSaveImage_ExactlyAtCeiling(t *testing.T) {
	t.Parallel()

	svc := NewUploadService(newMemStorage(), int64(len(pngBytes)))
	_, err := svc.SaveImage(context.Background(), 1, bytes.NewReader(pngBytes))
	assert.NoError(t, err, "a file exactly at the ceiling is allowed")
}

func TestSaveImage_RandomizedNames(t *testing.T) {
	t.Parallel()

	store := newMemStorage()
	svc := NewUploadService(store, 1<<20)

	a, err := svc.SaveImage(context.Background(), 3, bytes.NewReader(pngBytes))
	require.NoError(t, err)
	b, err := svc.SaveImage(context.Background(), 3, bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same user, same bytes, distinct names")
}
