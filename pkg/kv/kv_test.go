package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopverse/shopverse/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "shopverse_cart", `[]`))
	value, ok, err := store.Get(ctx, "shopverse_cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Set(ctx, "shopverse_cart", `[{"quantity":1}]`))
	value, _, _ = store.Get(ctx, "shopverse_cart")
	assert.Equal(t, `[{"quantity":1}]`, value)

	require.NoError(t, store.Delete(ctx, "shopverse_cart"))
	_, ok, err = store.Get(ctx, "shopverse_cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Close())
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := NewSQLite(path, nil)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Close())

	// Reopen: the value written before close must survive.
	store, err = NewSQLite(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "persisted", "yes"))
	require.NoError(t, store.Close())

	store, err = NewSQLite(path, nil)
	require.NoError(t, err)
	value, ok, err = store.Get(ctx, "persisted")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "yes", value)
	require.NoError(t, store.Close())
}

func TestFactorySelectsBackend(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, config.StorageConfig{Backend: config.StorageBackendMemory}, nil)
	require.NoError(t, err)
	_, isMemory := store.(*Memory)
	assert.True(t, isMemory)

	store, err = New(ctx, config.StorageConfig{
		Backend:    config.StorageBackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "kv.db"),
	}, nil)
	require.NoError(t, err)
	_, isSQLite := store.(*SQLite)
	assert.True(t, isSQLite)
	require.NoError(t, store.Close())

	_, err = New(ctx, config.StorageConfig{Backend: "frob"}, nil)
	assert.Error(t, err)
}
