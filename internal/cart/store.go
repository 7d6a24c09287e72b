// Package cart owns the shopping cart: a collection of product/quantity
// line items with derived monetary totals, persisted whole on every
// mutation.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/shopverse/shopverse/pkg/money"
)

const storageKey = "shopverse_cart"

// Totals are the derived fields recomputed from scratch after every
// mutation. They are never patched incrementally.
type Totals struct {
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
}

// StoreParams groups dependencies for the cart store.
type StoreParams struct {
	KV     kv.Store
	Logger *logger.Logger
}

// Store holds cart state. All state is private; mutations go through the
// exported operations and persist before returning.
type Store struct {
	kv  kv.Store
	log *logger.Logger

	mu     sync.Mutex
	items  []models.CartItem
	totals Totals
}

// NewStore builds a cart store with the required dependencies.
func NewStore(params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Store{
		kv:    params.KV,
		log:   params.Logger,
		items: []models.CartItem{},
	}, nil
}

// Load reads the persisted cart once. Corrupt data is discarded and the
// cart starts empty.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	items := []models.CartItem{}
	if ok {
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			s.log.Warn(ctx, "discarding corrupt cart data")
			if delErr := s.kv.Delete(ctx, storageKey); delErr != nil {
				s.log.Error(ctx, "removing corrupt cart entry", delErr)
			}
			items = []models.CartItem{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.totals = computeTotals(items)
	return nil
}

// AddItem increments the quantity of an existing line item for the
// product, or inserts a new one at quantity 1. The store does not reject
// adds beyond the product's stock; bounding against stock is the
// caller's contract.
func (s *Store) AddItem(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			return s.persistLocked(ctx)
		}
	}
	s.items = append(s.items, models.CartItem{Product: product.Clone(), Quantity: 1})
	return s.persistLocked(ctx)
}

// RemoveItem deletes the line item if present; absent ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, productID)
}

// UpdateQuantity sets the line item's quantity to the given absolute
// value. A quantity of zero or less removes the item entirely.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID)
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.CartItem{}
	return s.persistLocked(ctx)
}

// IsInCart reports whether a line item exists for the product.
func (s *Store) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the line item quantity, or 0 when absent.
func (s *Store) ItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Items returns a deep copy of the current line items.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneCartItems(s.items)
}

// Totals returns the current derived totals.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

func (s *Store) removeLocked(ctx context.Context, productID string) error {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// persistLocked recomputes derived fields and writes the full item list.
// Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	s.totals = computeTotals(s.items)

	raw, err := json.Marshal(s.items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart")
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting cart")
	}
	return nil
}

func computeTotals(items []models.CartItem) Totals {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	amounts := money.Compute(items)
	return Totals{
		TotalItems: count,
		Subtotal:   amounts.Subtotal,
		Discount:   amounts.Discount,
		Total:      amounts.Total,
	}
}
