package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFilterAcceptsAll(t *testing.T) {
	cat, err := ParseCategoryFilter("all")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, cat)

	// "all" is not a product category.
	assert.False(t, CategoryAll.IsValid())
	_, err = ParseCategory("all")
	assert.Error(t, err)

	cat, err = ParseCategoryFilter("books")
	require.NoError(t, err)
	assert.Equal(t, CategoryBooks, cat)
}

func TestParseCategoryRejectsUnknown(t *testing.T) {
	_, err := ParseCategory("toys")
	assert.Error(t, err)
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("returned")
	assert.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("upi")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodUPI, method)

	_, err = ParsePaymentMethod("wire")
	assert.Error(t, err)
}

func TestParseSortOption(t *testing.T) {
	for _, raw := range []string{"default", "price-low", "price-high", "rating", "popularity"} {
		opt, err := ParseSortOption(raw)
		require.NoError(t, err)
		assert.True(t, opt.IsValid())
	}

	_, err := ParseSortOption("newest")
	assert.Error(t, err)
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, UserRoleAdmin, role)

	_, err = ParseUserRole("root")
	assert.Error(t, err)
}
