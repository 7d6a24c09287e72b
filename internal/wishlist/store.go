// Package wishlist owns the saved-for-later set: at most one entry per
// product id, with the time each product was added.
package wishlist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
)

const storageKey = "shopverse_wishlist"

// StoreParams groups dependencies for the wishlist store.
type StoreParams struct {
	KV     kv.Store
	Logger *logger.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// Store holds the wishlist collection.
type Store struct {
	kv  kv.Store
	log *logger.Logger
	now func() time.Time

	mu    sync.Mutex
	items []models.WishlistItem
}

// NewStore builds a wishlist store with the required dependencies.
func NewStore(params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:    params.KV,
		log:   params.Logger,
		now:   now,
		items: []models.WishlistItem{},
	}, nil
}

// Load reads the persisted wishlist once. Corrupt data is discarded.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading wishlist")
	}

	items := []models.WishlistItem{}
	if ok {
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			s.log.Warn(ctx, "discarding corrupt wishlist data")
			if delErr := s.kv.Delete(ctx, storageKey); delErr != nil {
				s.log.Error(ctx, "removing corrupt wishlist entry", delErr)
			}
			items = []models.WishlistItem{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

// AddItem inserts the product with the current timestamp. Adding a
// product that is already present is a no-op.
func (s *Store) AddItem(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(product.ID) {
		return nil
	}
	s.items = append(s.items, models.WishlistItem{Product: product.Clone(), AddedAt: s.now()})
	return s.persistLocked(ctx)
}

// RemoveItem deletes the entry if present; absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// Toggle removes the product when present, adds it otherwise.
func (s *Store) Toggle(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	s.items = append(s.items, models.WishlistItem{Product: product.Clone(), AddedAt: s.now()})
	return s.persistLocked(ctx)
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.WishlistItem{}
	return s.persistLocked(ctx)
}

// IsInWishlist reports whether an entry exists for the product.
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productID)
}

// Count returns the collection size.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a deep copy of the current entries.
func (s *Store) Items() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WishlistItem, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store) containsLocked(productID string) bool {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding wishlist")
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting wishlist")
	}
	return nil
}
