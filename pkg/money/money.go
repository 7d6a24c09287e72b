// Package money holds the monetary aggregation rules shared by the cart
// and order stores.
package money

import (
	"github.com/shopspring/decimal"
	"github.com/shopverse/shopverse/pkg/models"
)

var oneHundred = decimal.NewFromInt(100)

// Totals are the derived monetary aggregates over a set of line items.
// Each field is rounded to cents independently from the raw sums, so
// Total can differ by up to one cent from Subtotal minus Discount.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives totals from scratch over the full item list. Sums are
// accumulated unrounded and each aggregate is rounded once, half-up on
// the cent boundary. Never round per line and sum.
func Compute(items []models.CartItem) Totals {
	subtotal := decimal.Zero
	discount := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineSubtotal := item.Product.Price.Mul(qty)
		subtotal = subtotal.Add(lineSubtotal)
		discount = discount.Add(lineSubtotal.Mul(item.Product.Discount).Div(oneHundred))
	}

	return Totals{
		Subtotal: Round(subtotal),
		Discount: Round(discount),
		Total:    Round(subtotal.Sub(discount)),
	}
}

// Round applies the cent rounding policy: two decimal places, halves away
// from zero (half-up for the non-negative amounts used here).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
