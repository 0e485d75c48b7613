package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanKey(t *testing.T) {
	valid := map[string]string{
		"uploads/a.jpg":      "uploads/a.jpg",
		"/uploads/a.jpg":     "uploads/a.jpg",
		"portfolio/2024/b.p": "portfolio/2024/b.p",
	}
	for key, want := range valid {
		got, err := CleanKey(key)
		require.NoError(t, err, "key=%q", key)
		assert.Equal(t, want, got)
	}

	for _, key := range []string{"", "/", "../etc/passwd", "uploads/../../x", "uploads//a.jpg", `uploads\a.jpg`} {
		_, err := CleanKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key=%q", key)
	}
}

func TestLocalStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/storage/"})
	require.NoError(t, err)

	key := "clients/logo.svg"
	require.NoError(t, store.Save(ctx, key, strings.NewReader("<svg/>"), "image/svg+xml"))

	fullPath := filepath.Join(store.Root(), "clients", "logo.svg")
	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	assert.Equal(t, "/storage/clients/logo.svg", store.URL(key))
	assert.Equal(t, "local", store.Provider())

	// Временные файлы не остаются рядом с сохраненным
	entries, err := os.ReadDir(filepath.Join(store.Root(), "clients"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	err = store.Save(context.Background(), "../outside.txt", strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, "/storage", store.BaseURL())
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Save(ctx, "uploads/a.txt", strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(filepath.Join(store.Root(), "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewStorage(t *testing.T) {
	local, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "local", local.Provider())

	s3Store, err := NewStorage(Config{Type: "s3", Bucket: "assets", Region: "eu-central-1"})
	require.NoError(t, err)
	assert.Equal(t, "s3", s3Store.Provider())
	assert.Equal(t, "https://assets.s3.eu-central-1.amazonaws.com/uploads/a.jpg", s3Store.URL("uploads/a.jpg"))

	r2, err := NewStorage(Config{Type: "cloudflare_r2", Bucket: "assets", Endpoint: "https://acc.r2.cloudflarestorage.com", BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "cloudflare_r2", r2.Provider())
	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", r2.URL("uploads/a.jpg"))

	_, err = NewStorage(Config{Type: "cloudflare_r2", Bucket: "assets"})
	assert.Error(t, err)

	_, err = NewStorage(Config{Type: "s3"})
	assert.Error(t, err)

	_, err = NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
