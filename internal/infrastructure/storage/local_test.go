package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	return store
}

func TestLocalStore_SaveAndLoad(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart-storage:abc", []byte(`[{"id":1}]`)))

	value, err := store.Load(ctx, "cart-storage:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestLocalStore_SaveReplacesValue(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart-storage:abc", []byte("[]")))
	require.NoError(t, store.Save(ctx, "cart-storage:abc", []byte(`[{"id":2}]`)))

	value, err := store.Load(ctx, "cart-storage:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":2}]`), value)
}

func TestLocalStore_LoadMissingKey(t *testing.T) {
	store := newLocalStore(t)

	_, err := store.Load(context.Background(), "cart-storage:missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Delete(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart-storage:abc", []byte("[]")))
	require.NoError(t, store.Delete(ctx, "cart-storage:abc"))

	_, err := store.Load(ctx, "cart-storage:abc")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "cart-storage:abc"))
}

func TestLocalStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")
	ctx := context.Background()

	store, err := NewLocalStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "cart-storage:abc", []byte(`[{"id":3}]`)))

	reopened, err := NewLocalStore(path)
	require.NoError(t, err)

	value, err := reopened.Load(ctx, "cart-storage:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":3}]`), value)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	original := []byte(`[{"id":1}]`)
	require.NoError(t, store.Save(ctx, "k", original))

	// Mutating the caller's slice must not affect the stored value
	original[0] = 'x'

	value, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
