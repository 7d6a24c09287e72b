package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/enums"
)

var oneHundred = decimal.NewFromInt(100)

// Product is a catalog record. Once a product is referenced by a cart or
// order line item it is value-copied; later catalog edits never reach
// historical snapshots.
type Product struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category enums.Category `json:"category"`
	// Price is the undiscounted unit price. Discount is a percentage in
	// [0,100] applied against it.
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
	Images      []string        `json:"images"`
	Features    []string        `json:"features"`
	Brand       string          `json:"brand"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DiscountedPrice returns price x (1 - discount/100), unrounded.
func (p Product) DiscountedPrice() decimal.Decimal {
	return p.Price.Mul(oneHundred.Sub(p.Discount)).Div(oneHundred)
}

// Clone returns a deep copy, including the image and feature slices.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	return out
}
