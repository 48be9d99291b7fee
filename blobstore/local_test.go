package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "snapshots/run1", []byte("payload")))

	blob, err := store.Open(ctx, "snapshots/run1")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(7), blob.Size())

	// Local blobs support zero-copy access
	mappable, ok := blob.(Mappable)
	require.True(t, ok)
	data, err := mappable.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_CreateAtomic(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	w, err := store.Create(ctx, "snap")
	require.NoError(t, err)
	_, err = w.Write([]byte("streamed"))
	require.NoError(t, err)

	// Not visible until Close renames it into place
	_, err = store.Open(ctx, "snap")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "snap")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(8), blob.Size())
}

func TestLocalStore_DeleteList(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "snapshots/a", []byte("a")))
	require.NoError(t, store.Put(ctx, "snapshots/b", []byte("b")))
	require.NoError(t, store.Put(ctx, "matrices/m", []byte("m")))

	names, err := store.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/a", "snapshots/b"}, names)

	require.NoError(t, store.Delete(ctx, "snapshots/a"))
	require.NoError(t, store.Delete(ctx, "snapshots/a")) // idempotent

	names, err = store.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/b"}, names)
}
