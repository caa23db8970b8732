package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/storage/local"
)

func TestStore_WriteReadRoundTrip(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte("fake png bytes")
	require.NoError(t, store.Write(ctx, "doc-1.png", payload))

	exists, err := store.Exists(ctx, "doc-1.png")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.Read(ctx, "doc-1.png")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStore_ExistsOnMissingFile(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	exists, err := store.Exists(context.Background(), "never-written.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_ReadMissingFile(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read(context.Background(), "never-written.jpg")
	assert.Error(t, err)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	store, err := local.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "doc-2.png", []byte("x")))
	require.NoError(t, store.Remove(ctx, "doc-2.png"))

	exists, err := store.Exists(ctx, "doc-2.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing an already-removed file is not an error.
	assert.NoError(t, store.Remove(ctx, "doc-2.png"))
}

func TestStore_NamesCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	store, err := local.NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "../../escape.png", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(filepath.Dir(dir)), "escape.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "scratch")
	_, err := local.NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
