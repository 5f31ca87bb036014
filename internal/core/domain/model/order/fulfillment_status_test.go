package order_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, s string) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromString(s)
	require.NoError(t, err)
	return q
}

func TestDeriveFulfillmentStatus(t *testing.T) {
	tests := []struct {
		name           string
		totalOrdered   string
		totalDelivered string
		want           order.FulfillmentStatus
	}{
		{"nothing delivered is pending", "10", "0", order.Pending},
		{"partial delivery is partial", "10", "4", order.Partial},
		{"exact delivery is completed", "10", "10", order.Completed},
		{"delivery above ordered is completed", "10", "12", order.Completed},
		{"fractional partial", "7.5", "2.5", order.Partial},
		{"zero ordered zero delivered is pending", "0", "0", order.Pending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.DeriveFulfillmentStatus(
				mustQuantity(t, tt.totalOrdered),
				mustQuantity(t, tt.totalDelivered),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFulfillmentStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.FulfillmentStatus{order.Pending, order.Partial, order.Completed} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.FulfillmentUnknown.Validate())
		require.Error(t, order.FulfillmentStatus(99).Validate())
	})
}

func TestFulfillmentStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Partial", order.Partial.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.FulfillmentUnknown.String())
	assert.Equal(t, "Unknown", order.FulfillmentStatus(99).String())
}

func TestFulfillmentStatus_Presentation(t *testing.T) {
	t.Run("colors", func(t *testing.T) {
		assert.Equal(t, "yellow", order.Pending.Color())
		assert.Equal(t, "blue", order.Partial.Color())
		assert.Equal(t, "green", order.Completed.Color())
		assert.Equal(t, "gray", order.FulfillmentUnknown.Color())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.Label())
		assert.Equal(t, "Partially Delivered", order.Partial.Label())
		assert.Equal(t, "Completed", order.Completed.Label())
		assert.Equal(t, "Unknown", order.FulfillmentUnknown.Label())
	})

	t.Run("badge classes", func(t *testing.T) {
		assert.Equal(t, "bg-yellow-100 text-yellow-800 border-yellow-200", order.Pending.BadgeClasses())
		assert.Equal(t, "bg-blue-100 text-blue-800 border-blue-200", order.Partial.BadgeClasses())
		assert.Equal(t, "bg-green-100 text-green-800 border-green-200", order.Completed.BadgeClasses())
		assert.Equal(t, "bg-gray-100 text-gray-800 border-gray-200", order.FulfillmentUnknown.BadgeClasses())
	})
}
