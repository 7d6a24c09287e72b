// Package catalog owns the product collection and its filtered view. The
// view composes three orthogonal dimensions (category, search query,
// sort) and is recomputed in full whenever any dimension or the
// underlying catalog changes.
package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/enums"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	pkgids "github.com/shopverse/shopverse/pkg/ids"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
)

const storageKey = "shopverse_products"

// ProductInput carries the caller-supplied fields for a new product; the
// store assigns the id and creation timestamp.
type ProductInput struct {
	Name        string
	Category    enums.Category
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Stock       int
	Description string
	Rating      float64
	ReviewCount int
	Images      []string
	Features    []string
	Brand       string
}

// StoreParams groups dependencies for the catalog store.
type StoreParams struct {
	KV     kv.Store
	Logger *logger.Logger

	// Seed is written when no catalog has been persisted yet. Nil means
	// start empty.
	Seed []models.Product

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// Store holds the catalog and the in-memory filter state. Filter state
// is not persisted; it resets on every load.
type Store struct {
	kv    kv.Store
	log   *logger.Logger
	seed  []models.Product
	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	products []models.Product
	category enums.Category
	search   string
	sortBy   enums.SortOption
	filtered []models.Product
}

// NewStore builds a catalog store with the required dependencies.
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
	newID := params.NewID
	if newID == nil {
		newID = pkgids.NewProductID
	}
	return &Store{
		kv:       params.KV,
		log:      params.Logger,
		seed:     params.Seed,
		now:      now,
		newID:    newID,
		products: []models.Product{},
		category: enums.CategoryAll,
		sortBy:   enums.SortDefault,
	}, nil
}

// Load reads the persisted catalog once. A missing or corrupt collection
// falls back to the seed set, which is persisted in its place.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog")
	}

	var products []models.Product
	useSeed := !ok
	if ok {
		if err := json.Unmarshal([]byte(value), &products); err != nil {
			s.log.Warn(ctx, "discarding corrupt catalog data")
			useSeed = true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if useSeed {
		s.products = cloneProducts(s.seed)
		if s.products == nil {
			s.products = []models.Product{}
		}
		if err := s.persistLocked(ctx); err != nil {
			return err
		}
	} else {
		s.products = products
		s.recomputeLocked()
	}
	return nil
}

// AddProduct assigns a new id and creation timestamp and appends.
func (s *Store) AddProduct(ctx context.Context, input ProductInput) (models.Product, error) {
	product := models.Product{
		ID:          s.newID(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Discount:    input.Discount,
		Stock:       input.Stock,
		Description: input.Description,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Images:      append([]string(nil), input.Images...),
		Features:    append([]string(nil), input.Features...),
		Brand:       input.Brand,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	if err := s.persistLocked(ctx); err != nil {
		return models.Product{}, err
	}
	return product.Clone(), nil
}

// UpdateProduct replaces the stored record matching the product's id.
// Unknown ids are a no-op.
func (s *Store) UpdateProduct(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product.Clone()
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// DeleteProduct removes the matching record. Unknown ids are a no-op.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// ProductByID returns the product and whether it exists.
func (s *Store) ProductByID(productID string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, product := range s.products {
		if product.ID == productID {
			return product.Clone(), true
		}
	}
	return models.Product{}, false
}

// SetCategory updates the category dimension and recomputes the view.
// enums.CategoryAll bypasses category filtering.
func (s *Store) SetCategory(category enums.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	s.recomputeLocked()
}

// SetSearch updates the text query dimension and recomputes the view.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
	s.recomputeLocked()
}

// SetSortBy updates the sort dimension and recomputes the view.
func (s *Store) SetSortBy(sortBy enums.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = sortBy
	s.recomputeLocked()
}

// Products returns a copy of the full catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.products)
}

// Filtered returns a copy of the current filtered, sorted view.
func (s *Store) Filtered() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.filtered)
}

// persistLocked writes the full catalog and recomputes the filtered
// view. Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	s.recomputeLocked()

	raw, err := json.Marshal(s.products)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding catalog")
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting catalog")
	}
	return nil
}

func (s *Store) recomputeLocked() {
	s.filtered = filterAndSort(s.products, s.category, s.search, s.sortBy)
}

func cloneProducts(products []models.Product) []models.Product {
	if products == nil {
		return nil
	}
	out := make([]models.Product, len(products))
	for i, product := range products {
		out[i] = product.Clone()
	}
	return out
}
