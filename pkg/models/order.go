package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/enums"
	"github.com/shopverse/shopverse/pkg/types"
)

// Order is an immutable purchase record. Items and amounts are frozen at
// creation; only Status changes afterwards.
type Order struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
	// TotalAmount is the pre-discount sum, Discount the summed per-item
	// discount amounts, FinalAmount their difference. Each is rounded to
	// cents independently.
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Discount        decimal.Decimal     `json:"discount"`
	FinalAmount     decimal.Decimal     `json:"finalAmount"`
	ShippingAddress types.Address       `json:"shippingAddress"`
	PaymentMethod   enums.PaymentMethod `json:"paymentMethod"`
	Status          enums.OrderStatus   `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	out.Items = CloneCartItems(o.Items)
	return out
}
