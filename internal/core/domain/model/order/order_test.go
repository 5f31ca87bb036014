package order_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productName, unit, quantity string) order.Item {
	t.Helper()
	item, err := order.NewItem(productName, unit, mustQuantity(t, quantity))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem("Cement Bags", "bags", mustQuantity(t, "10"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Cement Bags", item.ProductName())
		assert.Equal(t, "bags", item.Unit())
		assert.Equal(t, "10", item.Quantity().String())
	})

	t.Run("empty product name fails", func(t *testing.T) {
		_, err := order.NewItem("", "bags", mustQuantity(t, "10"))
		require.Error(t, err)
	})

	t.Run("empty unit fails", func(t *testing.T) {
		_, err := order.NewItem("Cement Bags", "", mustQuantity(t, "10"))
		require.Error(t, err)
	})

	t.Run("unconstructed quantity fails", func(t *testing.T) {
		_, err := order.NewItem("Cement Bags", "bags", kernel.Quantity{})
		require.Error(t, err)
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		item, err := order.NewItem("Cement Bags", "bags", kernel.ZeroQuantity())
		require.NoError(t, err)
		assert.True(t, item.Quantity().IsZero())
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		id := kernel.NewUUID()
		companyID := kernel.NewUUID()
		items := []order.Item{
			mustItem(t, "Cement Bags", "bags", "10"),
			mustItem(t, "Rebar", "tonnes", "2.5"),
		}

		o, err := order.NewOrder(id, companyID, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CompanyID().IsEqual(companyID))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, order.PendingApproval, o.ApprovalState())
		assert.Equal(t, order.Pending, o.FulfillmentStatus())
		assert.True(t, o.QuantityDelivered().IsZero())
		assert.Equal(t, "12.5", o.TotalOrdered().String())
	})

	t.Run("invalid id fails", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), []order.Item{mustItem(t, "Cement Bags", "bags", "10")})
		require.Error(t, err)
	})

	t.Run("invalid company id fails", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, []order.Item{mustItem(t, "Cement Bags", "bags", "10")})
		require.Error(t, err)
	})

	t.Run("no items fails", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("unconstructed item fails", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}})
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		companyID := kernel.NewUUID()
		updatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, companyID,
			[]order.Item{mustItem(t, "Cement Bags", "bags", "10")},
			order.Approved, order.Partial, mustQuantity(t, "4"), updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.ApprovalState())
		assert.Equal(t, order.Partial, o.FulfillmentStatus())
		assert.Equal(t, "4", o.QuantityDelivered().String())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("accepts empty item set", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			nil,
			order.PendingApproval, order.Pending, kernel.ZeroQuantity(), time.Now(),
		)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.True(t, o.TotalOrdered().IsZero())
	})

	t.Run("invalid states fail", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			order.ApprovalUnknown, order.Pending, kernel.ZeroQuantity(), time.Now(),
		)
		require.Error(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			order.PendingApproval, order.FulfillmentUnknown, kernel.ZeroQuantity(), time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_ApprovalWorkflow(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Cement Bags", "bags", "10")})
		require.NoError(t, err)
		return o
	}

	t.Run("approve pending order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Approve())
		assert.Equal(t, order.Approved, o.ApprovalState())
	})

	t.Run("reject pending order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.ApprovalState())
	})

	t.Run("approve twice fails", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Approve())
		require.Error(t, o.Approve())
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Approve())
		require.Error(t, o.Reject())
	})
}

func TestOrder_ApplyReconciliation(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Cement Bags", "bags", "10")})
		require.NoError(t, err)
		return o
	}

	t.Run("records status, total, and timestamp", func(t *testing.T) {
		o := newOrder(t)
		at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		require.NoError(t, o.ApplyReconciliation(order.Partial, mustQuantity(t, "4"), at))

		assert.Equal(t, order.Partial, o.FulfillmentStatus())
		assert.Equal(t, "4", o.QuantityDelivered().String())
		assert.Equal(t, at, o.UpdatedAt())
	})

	t.Run("any valid status may replace any other", func(t *testing.T) {
		o := newOrder(t)
		at := time.Now().UTC()

		require.NoError(t, o.ApplyReconciliation(order.Completed, mustQuantity(t, "10"), at))
		require.NoError(t, o.ApplyReconciliation(order.Pending, kernel.ZeroQuantity(), at))
		assert.Equal(t, order.Pending, o.FulfillmentStatus())
	})

	t.Run("invalid status fails", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ApplyReconciliation(order.FulfillmentUnknown, kernel.ZeroQuantity(), time.Now()))
	})

	t.Run("unconstructed total fails", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ApplyReconciliation(order.Pending, kernel.Quantity{}, time.Now()))
	})

	t.Run("zero timestamp fails", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ApplyReconciliation(order.Pending, kernel.ZeroQuantity(), time.Time{}))
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{mustQuantityItem(t)})
	require.NoError(t, err)

	items := o.Items()
	items[0] = order.Item{}

	require.NoError(t, o.Items()[0].Validate())
}

func mustQuantityItem(t *testing.T) order.Item {
	t.Helper()
	return mustItem(t, "Cement Bags", "bags", "10")
}
