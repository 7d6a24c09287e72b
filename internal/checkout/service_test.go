package checkout

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/internal/cart"
	"github.com/shopverse/shopverse/internal/identity"
	"github.com/shopverse/shopverse/internal/orders"
	"github.com/shopverse/shopverse/pkg/enums"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/shopverse/shopverse/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service  *Service
	cart     *cart.Store
	orders   *orders.Store
	identity *identity.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	backend := kv.NewMemory()
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	cartStore, err := cart.NewStore(cart.StoreParams{KV: backend, Logger: log})
	require.NoError(t, err)
	require.NoError(t, cartStore.Load(ctx))

	orderStore, err := orders.NewStore(orders.StoreParams{KV: backend, Logger: log})
	require.NoError(t, err)
	require.NoError(t, orderStore.Load(ctx))

	identityStore, err := identity.NewStore(identity.StoreParams{KV: backend, Logger: log})
	require.NoError(t, err)
	require.NoError(t, identityStore.Load(ctx))

	service, err := NewService(ServiceParams{
		Cart:     cartStore,
		Orders:   orderStore,
		Identity: identityStore,
		Logger:   log,
	})
	require.NoError(t, err)

	return &fixture{service: service, cart: cartStore, orders: orderStore, identity: identityStore}
}

func (f *fixture) signIn(t *testing.T) models.User {
	t.Helper()
	user, err := f.identity.Register(context.Background(), identity.RegisterInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "hunter2",
		Phone:    "555-0100",
	})
	require.NoError(t, err)
	return user
}

func validInput() PlaceOrderInput {
	return PlaceOrderInput{
		ShippingAddress: types.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA"},
		PaymentMethod:   enums.PaymentMethodCard,
	}
}

func widget() models.Product {
	return models.Product{
		ID:       "prod_w",
		Name:     "Widget",
		Price:    decimal.RequireFromString("20"),
		Discount: decimal.RequireFromString("10"),
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.signIn(t)

	require.NoError(t, f.cart.AddItem(ctx, widget()))
	require.NoError(t, f.cart.UpdateQuantity(ctx, "prod_w", 3))

	order, err := f.service.PlaceOrder(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, enums.OrderStatusConfirmed, order.Status)
	assert.True(t, order.FinalAmount.Equal(decimal.RequireFromString("54.00")))

	// The cart empties after placement.
	assert.Empty(t, f.cart.Items())
	assert.Equal(t, 0, f.cart.Totals().TotalItems)

	// The order is in the log.
	assert.Len(t, f.orders.OrdersByUserID(user.ID), 1)
}

func TestPlaceOrderRequiresSignIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.cart.AddItem(ctx, widget()))

	_, err := f.service.PlaceOrder(ctx, validInput())
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized))
}

func TestPlaceOrderValidatesAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signIn(t)
	require.NoError(t, f.cart.AddItem(ctx, widget()))

	input := validInput()
	input.ShippingAddress.City = ""

	_, err := f.service.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	// The cart survives a failed checkout.
	assert.Len(t, f.cart.Items(), 1)
}

func TestPlaceOrderValidatesPaymentMethod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signIn(t)
	require.NoError(t, f.cart.AddItem(ctx, widget()))

	input := validInput()
	input.PaymentMethod = enums.PaymentMethod("barter")

	_, err := f.service.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signIn(t)

	_, err := f.service.PlaceOrder(ctx, validInput())
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestPlacedOrderIsImmuneToLaterCartActivity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.signIn(t)

	require.NoError(t, f.cart.AddItem(ctx, widget()))
	order, err := f.service.PlaceOrder(ctx, validInput())
	require.NoError(t, err)

	// New cart activity after checkout must not reach the placed order.
	require.NoError(t, f.cart.AddItem(ctx, widget()))
	require.NoError(t, f.cart.UpdateQuantity(ctx, "prod_w", 50))

	stored, ok := f.orders.OrderByID(order.ID)
	require.True(t, ok)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}
