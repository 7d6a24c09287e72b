// Package orders owns the append/update log of placed orders. An order's
// items and amounts are a value snapshot of the cart at placement time;
// only the status ever changes afterwards.
package orders

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopverse/shopverse/pkg/enums"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/ids"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/shopverse/shopverse/pkg/money"
	"github.com/shopverse/shopverse/pkg/types"
)

const storageKey = "shopverse_orders"

// CreateOrderInput carries everything an order snapshot needs. Items are
// value-copied; the caller's slice stays untouched and later cart
// mutations never reach the stored order.
type CreateOrderInput struct {
	UserID          string
	Items           []models.CartItem
	ShippingAddress types.Address
	PaymentMethod   enums.PaymentMethod
}

// StoreParams groups dependencies for the order store.
type StoreParams struct {
	KV     kv.Store
	Logger *logger.Logger

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// Store holds the order log.
type Store struct {
	kv    kv.Store
	log   *logger.Logger
	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	orders []models.Order
}

// NewStore builds an order store with the required dependencies.
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
		newID = ids.NewOrderID
	}
	return &Store{
		kv:     params.KV,
		log:    params.Logger,
		now:    now,
		newID:  newID,
		orders: []models.Order{},
	}, nil
}

// Load reads the persisted order log once. Corrupt data is discarded.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading orders")
	}

	orders := []models.Order{}
	if ok {
		if err := json.Unmarshal([]byte(value), &orders); err != nil {
			s.log.Warn(ctx, "discarding corrupt order data")
			orders = []models.Order{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	return nil
}

// CreateOrder snapshots the supplied items, computes the monetary
// aggregates over them, and appends the order. Totals are recomputed
// here rather than read from the live cart so the order reflects the
// items exactly as supplied. Orders are created directly in confirmed
// status; no pending order comes out of this path.
func (s *Store) CreateOrder(ctx context.Context, input CreateOrderInput) (models.Order, error) {
	amounts := money.Compute(input.Items)

	order := models.Order{
		ID:              s.newID(),
		UserID:          input.UserID,
		Items:           models.CloneCartItems(input.Items),
		TotalAmount:     amounts.Subtotal,
		Discount:        amounts.Discount,
		FinalAmount:     amounts.Total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          enums.OrderStatusConfirmed,
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	if err := s.persistLocked(ctx); err != nil {
		return models.Order{}, err
	}
	return order.Clone(), nil
}

// UpdateOrderStatus sets the order's status. Any valid status may be set
// from any other, which is how admin overrides work; only values outside
// the enum are rejected. Unknown order ids are a no-op.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "invalid order status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// OrdersByUserID returns copies of the user's orders in placement order.
func (s *Store) OrdersByUserID(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, order.Clone())
		}
	}
	return out
}

// OrderByID returns the order and whether it exists.
func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return order.Clone(), true
		}
	}
	return models.Order{}, false
}

// AllOrders returns copies of every order in placement order.
func (s *Store) AllOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	for i, order := range s.orders {
		out[i] = order.Clone()
	}
	return out
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.orders)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding orders")
	}
	if err := s.kv.Set(ctx, storageKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting orders")
	}
	return nil
}
