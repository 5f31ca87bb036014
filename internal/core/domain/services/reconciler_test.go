package services_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, s string) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromString(s)
	require.NoError(t, err)
	return q
}

func orderItem(t *testing.T, productName, unit, quantity string) order.Item {
	t.Helper()
	item, err := order.NewItem(productName, unit, mustQuantity(t, quantity))
	require.NoError(t, err)
	return item
}

func deliveryItem(t *testing.T, productName, unit, quantity string) delivery.Item {
	t.Helper()
	item, err := delivery.NewItem(productName, unit, mustQuantity(t, quantity))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
	require.NoError(t, err)
	return o
}

// deliveredDelivery builds a delivery against the order that has already
// reached Delivered status.
func deliveredDelivery(t *testing.T, o *order.Order, items ...delivery.Item) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), items)
	require.NoError(t, err)
	require.NoError(t, d.MarkDelivered(time.Now().UTC()))
	return d
}

func pendingDelivery(t *testing.T, o *order.Order, items ...delivery.Item) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), items)
	require.NoError(t, err)
	return d
}

func TestReconciler_FullDelivery(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
	d := deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "10"))

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{d})

	require.NoError(t, err)
	assert.Equal(t, order.Completed, report.Status)
	assert.Equal(t, "10", report.TotalOrdered.String())
	assert.Equal(t, "10", report.TotalDelivered.String())
	assert.InDelta(t, 100.0, report.PercentComplete, 1e-9)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "10", report.Items[0].Delivered.String())
}

func TestReconciler_PartialDelivery(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
	d := deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "4"))

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{d})

	require.NoError(t, err)
	assert.Equal(t, order.Partial, report.Status)
	assert.Equal(t, "10", report.TotalOrdered.String())
	assert.Equal(t, "4", report.TotalDelivered.String())
	assert.InDelta(t, 40.0, report.PercentComplete, 1e-9)
}

func TestReconciler_NoDeliveries(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))

	report, err := services.NewReconciler().Reconcile(o, nil)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, report.Status)
	assert.Equal(t, "10", report.TotalOrdered.String())
	assert.True(t, report.TotalDelivered.IsZero())
	assert.InDelta(t, 0.0, report.PercentComplete, 1e-9)
	require.Len(t, report.Items, 1)
	assert.True(t, report.Items[0].Delivered.IsZero())
}

func TestReconciler_OverDeliveryIsCapped(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
	d := deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "15"))

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{d})

	require.NoError(t, err)
	assert.Equal(t, order.Completed, report.Status)
	assert.Equal(t, "10", report.TotalOrdered.String())
	// The counted total is capped at the ordered amount...
	assert.Equal(t, "10", report.TotalDelivered.String())
	assert.InDelta(t, 100.0, report.PercentComplete, 1e-9)
	// ...while the per-line figure still reports the raw arrival.
	require.Len(t, report.Items, 1)
	assert.Equal(t, "15", report.Items[0].Delivered.String())
}

func TestReconciler_UnmatchedDeliveryLineIsIgnored(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
	d := deliveredDelivery(t, o,
		deliveryItem(t, "Sand", "m3", "5"),
		deliveryItem(t, "Cement Bags", "pallets", "5"), // same product, wrong unit
		deliveryItem(t, "cement bags", "bags", "5"),    // wrong case
	)

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{d})

	require.NoError(t, err)
	assert.Equal(t, order.Pending, report.Status)
	assert.True(t, report.TotalDelivered.IsZero())
	assert.True(t, report.Items[0].Delivered.IsZero())
}

func TestReconciler_NonDeliveredDeliveriesAreExcluded(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))

	pending := pendingDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "10"))
	inTransit := pendingDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "10"))
	require.NoError(t, inTransit.Dispatch())

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{pending, inTransit})

	require.NoError(t, err)
	assert.Equal(t, order.Pending, report.Status)
	assert.True(t, report.TotalDelivered.IsZero())
}

func TestReconciler_AggregatesAcrossDeliveries(t *testing.T) {
	o := newOrder(t,
		orderItem(t, "Cement Bags", "bags", "10"),
		orderItem(t, "Rebar", "tonnes", "2.5"),
	)
	first := deliveredDelivery(t, o,
		deliveryItem(t, "Cement Bags", "bags", "6"),
		deliveryItem(t, "Rebar", "tonnes", "1"),
	)
	second := deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "4"))

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{first, second})

	require.NoError(t, err)
	assert.Equal(t, order.Partial, report.Status)
	assert.Equal(t, "12.5", report.TotalOrdered.String())
	assert.Equal(t, "11", report.TotalDelivered.String())
	assert.InDelta(t, 88.0, report.PercentComplete, 1e-9)

	require.Len(t, report.Items, 2)
	assert.Equal(t, "Cement Bags", report.Items[0].ProductName)
	assert.Equal(t, "10", report.Items[0].Delivered.String())
	assert.Equal(t, "Rebar", report.Items[1].ProductName)
	assert.Equal(t, "1", report.Items[1].Delivered.String())
}

func TestReconciler_OrderWithoutLines(t *testing.T) {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		order.PendingApproval, order.Pending, kernel.ZeroQuantity(), time.Now().UTC(),
	)
	require.NoError(t, err)

	report, reconcileErr := services.NewReconciler().Reconcile(o, nil)

	require.NoError(t, reconcileErr)
	assert.Equal(t, order.Pending, report.Status)
	assert.True(t, report.TotalOrdered.IsZero())
	assert.True(t, report.TotalDelivered.IsZero())
	assert.InDelta(t, 0.0, report.PercentComplete, 1e-9)
	assert.Empty(t, report.Items)
}

func TestReconciler_Idempotent(t *testing.T) {
	o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
	deliveries := []*delivery.Delivery{
		deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "4")),
	}
	reconciler := services.NewReconciler()

	first, err := reconciler.Reconcile(o, deliveries)
	require.NoError(t, err)
	second, err := reconciler.Reconcile(o, deliveries)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.True(t, first.TotalOrdered.IsEqual(second.TotalOrdered))
	assert.True(t, first.TotalDelivered.IsEqual(second.TotalDelivered))
	assert.Equal(t, first.PercentComplete, second.PercentComplete)
	require.Equal(t, len(first.Items), len(second.Items))
	for i := range first.Items {
		assert.True(t, first.Items[i].Delivered.IsEqual(second.Items[i].Delivered))
	}
}

func TestReconciler_AdditionalDeliveryNeverDecreasesProgress(t *testing.T) {
	o := newOrder(t,
		orderItem(t, "Cement Bags", "bags", "10"),
		orderItem(t, "Rebar", "tonnes", "2.5"),
	)
	reconciler := services.NewReconciler()

	deliveries := []*delivery.Delivery{
		deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", "3")),
	}
	before, err := reconciler.Reconcile(o, deliveries)
	require.NoError(t, err)

	additions := []delivery.Item{
		deliveryItem(t, "Cement Bags", "bags", "2"),
		deliveryItem(t, "Rebar", "tonnes", "0.5"),
		deliveryItem(t, "Gravel", "m3", "9"), // unmatched, contributes nothing
	}
	for _, item := range additions {
		deliveries = append(deliveries, deliveredDelivery(t, o, item))

		after, reconcileErr := reconciler.Reconcile(o, deliveries)
		require.NoError(t, reconcileErr)

		assert.True(t, after.TotalDelivered.GreaterThanOrEqual(before.TotalDelivered))
		assert.GreaterOrEqual(t, after.PercentComplete, before.PercentComplete)
		before = after
	}
}

func TestReconciler_CappedTotalsNeverExceedOrdered(t *testing.T) {
	o := newOrder(t,
		orderItem(t, "Cement Bags", "bags", "10"),
		orderItem(t, "Rebar", "tonnes", "2.5"),
	)
	d := deliveredDelivery(t, o,
		deliveryItem(t, "Cement Bags", "bags", "100"),
		deliveryItem(t, "Rebar", "tonnes", "50"),
	)

	report, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{d})

	require.NoError(t, err)
	assert.True(t, report.TotalOrdered.GreaterThanOrEqual(report.TotalDelivered))
	assert.Equal(t, "12.5", report.TotalDelivered.String())
	assert.Equal(t, order.Completed, report.Status)
	// Raw per-line figures are preserved.
	assert.Equal(t, "100", report.Items[0].Delivered.String())
	assert.Equal(t, "50", report.Items[1].Delivered.String())
}

func TestReconciler_StatusPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		ordered   string
		delivered string
		want      order.FulfillmentStatus
	}{
		{"zero delivered is pending", "10", "0", order.Pending},
		{"under ordered is partial", "10", "9.99", order.Partial},
		{"exactly ordered is completed", "10", "10", order.Completed},
		{"above ordered is completed", "10", "11", order.Completed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(t, orderItem(t, "Cement Bags", "bags", tt.ordered))

			var deliveries []*delivery.Delivery
			if tt.delivered != "0" {
				deliveries = append(deliveries,
					deliveredDelivery(t, o, deliveryItem(t, "Cement Bags", "bags", tt.delivered)))
			}

			report, err := services.NewReconciler().Reconcile(o, deliveries)

			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Status)
		})
	}
}

func TestReconciler_InvalidAggregatesFail(t *testing.T) {
	t.Run("unconstructed order fails", func(t *testing.T) {
		var o order.Order

		_, err := services.NewReconciler().Reconcile(&o, nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("unconstructed delivery fails", func(t *testing.T) {
		o := newOrder(t, orderItem(t, "Cement Bags", "bags", "10"))
		var d delivery.Delivery

		_, err := services.NewReconciler().Reconcile(o, []*delivery.Delivery{&d})

		require.ErrorIs(t, err, delivery.ErrDeliveryIsNotConstructed)
	})
}
