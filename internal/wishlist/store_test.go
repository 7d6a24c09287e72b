package wishlist

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, backend kv.Store) *Store {
	t.Helper()
	store, err := NewStore(StoreParams{
		KV:     backend,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Now:    func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	require.NoError(t, store.Load(context.Background()))
	return store
}

func product(id string) models.Product {
	return models.Product{ID: id, Name: "product " + id, Price: decimal.NewFromInt(10)}
}

func TestAddItemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory())

	require.NoError(t, store.AddItem(ctx, product("prod_1")))
	require.NoError(t, store.AddItem(ctx, product("prod_1")))

	assert.Equal(t, 1, store.Count())
	assert.True(t, store.IsInWishlist("prod_1"))
}

func TestToggleTwiceReturnsToEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory())

	require.NoError(t, store.Toggle(ctx, product("prod_1")))
	assert.Equal(t, 1, store.Count())

	require.NoError(t, store.Toggle(ctx, product("prod_1")))
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.Items())
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory())

	require.NoError(t, store.RemoveItem(ctx, "prod_missing"))
	assert.Equal(t, 0, store.Count())
}

func TestAddRecordsTimestamp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory())

	require.NoError(t, store.AddItem(ctx, product("prod_1")))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), items[0].AddedAt)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kv.NewMemory())

	require.NoError(t, store.AddItem(ctx, product("prod_1")))
	require.NoError(t, store.AddItem(ctx, product("prod_2")))
	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Count())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()

	store := newTestStore(t, backend)
	require.NoError(t, store.AddItem(ctx, product("prod_1")))
	require.NoError(t, store.AddItem(ctx, product("prod_2")))
	require.NoError(t, store.RemoveItem(ctx, "prod_1"))

	reloaded := newTestStore(t, backend)
	assert.Equal(t, 1, reloaded.Count())
	assert.True(t, reloaded.IsInWishlist("prod_2"))
	assert.False(t, reloaded.IsInWishlist("prod_1"))
}

func TestLoadDiscardsCorruptData(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	require.NoError(t, backend.Set(ctx, "shopverse_wishlist", "!!"))

	store := newTestStore(t, backend)
	assert.Equal(t, 0, store.Count())
}
