// Package checkout orchestrates order placement across the cart,
// identity and order stores so callers never wire them together by hand.
package checkout

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/shopverse/shopverse/internal/cart"
	"github.com/shopverse/shopverse/internal/identity"
	"github.com/shopverse/shopverse/internal/orders"
	"github.com/shopverse/shopverse/pkg/enums"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/shopverse/shopverse/pkg/types"
)

// PlaceOrderInput carries the checkout form: the shipping address with
// its required fields and the chosen payment method.
type PlaceOrderInput struct {
	ShippingAddress types.Address `validate:"required"`
	PaymentMethod   enums.PaymentMethod
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Cart     *cart.Store
	Orders   *orders.Store
	Identity *identity.Store
	Logger   *logger.Logger
}

// Service exposes the checkout flow.
type Service struct {
	cart     *cart.Store
	orders   *orders.Store
	identity *identity.Store
	log      *logger.Logger
	validate *validator.Validate
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart store is required")
	}
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order store is required")
	}
	if params.Identity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "identity store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{
		cart:     params.Cart,
		orders:   params.Orders,
		identity: params.Identity,
		log:      params.Logger,
		validate: validator.New(),
	}, nil
}

// PlaceOrder snapshots the current cart into a new order for the
// signed-in user and then clears the cart. When the order is created but
// the cart fails to clear, the order is returned together with the
// error; callers may retry the clear themselves.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (models.Order, error) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}

	if err := s.validate.Struct(input); err != nil {
		return models.Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "shipping address is incomplete")
	}
	if !input.PaymentMethod.IsValid() {
		return models.Order{}, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid payment method %q", input.PaymentMethod)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order, err := s.orders.CreateOrder(ctx, orders.CreateOrderInput{
		UserID:          user.ID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		return models.Order{}, err
	}

	octx := s.log.WithOrderID(s.log.WithUserID(ctx, user.ID), order.ID)
	if err := s.cart.Clear(ctx); err != nil {
		s.log.Error(octx, "order placed but cart was not cleared", err)
		return order, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order placed but cart was not cleared")
	}

	s.log.Info(octx, "order placed")
	return order, nil
}
