package models

import "time"

// CartItem pairs a product snapshot with a positive quantity. A cart
// holds at most one item per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Clone returns a deep copy of the line item.
func (c CartItem) Clone() CartItem {
	return CartItem{Product: c.Product.Clone(), Quantity: c.Quantity}
}

// CloneCartItems deep-copies a line item slice, preserving order.
func CloneCartItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// WishlistItem records when a product was saved for later. At most one
// entry exists per product id.
type WishlistItem struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}

// Clone returns a deep copy of the entry.
func (w WishlistItem) Clone() WishlistItem {
	return WishlistItem{Product: w.Product.Clone(), AddedAt: w.AddedAt}
}
