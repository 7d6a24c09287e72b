package types

import "strings"

// Address is the shipping/profile address value object. Country is not
// required at checkout; DefaultAddress fills it in.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country"`
}

// DefaultAddress is the empty-ish address assigned to new accounts.
func DefaultAddress() Address {
	return Address{Country: "USA"}
}

// IsZero reports whether every user-entered field is blank.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.ZipCode) == ""
}
