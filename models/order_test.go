package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, want := range []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		got, err := ParseOrderStatus(string(want))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Case-insensitive on the way in.
	got, err := ParseOrderStatus("DELIVERED")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, got)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestParsePaymentStatus(t *testing.T) {
	got, err := ParsePaymentStatus("completed")
	assert.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, got)

	_, err = ParsePaymentStatus("refunded")
	assert.Error(t, err)
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
	assert.False(t, OrderStatusPreparing.Terminal())
	assert.False(t, OrderStatusOutForDelivery.Terminal())
}

func TestOrderableNeedsVariants(t *testing.T) {
	item := FoodItem{ID: "f1", Name: "Chicken Pickle", InStock: true}
	assert.False(t, item.Orderable())

	item.Variants = []FoodVariant{{ID: "v1", FoodItemID: "f1", Label: "250g", Price: 250}}
	assert.True(t, item.Orderable())
}
