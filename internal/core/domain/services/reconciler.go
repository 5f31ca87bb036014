package services

import (
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ItemFulfillment reports the delivered progress of a single order line.
type ItemFulfillment struct {
	// ProductName and Unit identify the order line (its matching key).
	ProductName string
	Unit        string

	// Ordered is the quantity the line asked for.
	Ordered kernel.Quantity

	// Delivered is the raw matched total across all delivered deliveries.
	// It is deliberately uncapped: an over-delivered line reports the full
	// amount that arrived, even though only the ordered amount counts toward
	// the order's completion.
	Delivered kernel.Quantity
}

// ReconciliationReport is the outcome of reconciling one order against its
// delivered deliveries.
type ReconciliationReport struct {
	// Status is the derived fulfillment status of the order.
	Status order.FulfillmentStatus

	// TotalOrdered sums the ordered quantities across all lines.
	TotalOrdered kernel.Quantity

	// TotalDelivered sums the per-line delivered amounts after capping each
	// line at its ordered quantity. Over-delivery never pushes an order past
	// 100 percent.
	TotalDelivered kernel.Quantity

	// PercentComplete is TotalDelivered / TotalOrdered * 100, or 0 when
	// nothing was ordered.
	PercentComplete float64

	// Items reports per-line progress in order-line order.
	Items []ItemFulfillment
}

// matchingKey associates delivery lines with order lines. Matching is an
// exact, case-sensitive comparison of product name and unit; there is no
// fuzzy matching and no id-based linkage on this path.
type matchingKey struct {
	productName string
	unit        string
}

// Reconciler is the domain service that computes an order's fulfillment from
// its line items and the deliveries recorded against it.
//
// The computation is deterministic and idempotent: it reads nothing but its
// arguments and mutates nothing, so re-running it with the same inputs always
// produces the same report.
//
// Business rules:
//   - Only deliveries in Delivered status contribute; all others are ignored
//     regardless of their contents
//   - Delivery lines match order lines by exact (product name, unit) pair;
//     unmatched delivery lines contribute nothing and raise no error
//   - Each line counts at most its ordered quantity toward completion, while
//     the per-line report still carries the raw delivered amount
//   - Status precedence: nothing delivered is Pending, ordered total covered
//     is Completed, anything in between is Partial; an order with nothing
//     ordered is Pending
//
// Example usage:
//
//	reconciler := services.NewReconciler()
//	report, err := reconciler.Reconcile(order, deliveries)
//	if err != nil {
//	    // an aggregate was not properly constructed
//	    return
//	}
//	if report.Status == order.Completed {
//	    // notify the requester, close out the order, etc.
//	}
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile computes the fulfillment report for the given order from the
// given deliveries.
//
// The deliveries slice may contain deliveries in any lifecycle state; only
// those in Delivered status are counted. The caller is expected to pass the
// order's own deliveries. An order with zero deliveries is a normal input
// and produces a Pending report.
//
// Returns an error only when an aggregate fails construction validation; no
// combination of quantities is an error.
func (r Reconciler) Reconcile(o *order.Order, deliveries []*delivery.Delivery) (ReconciliationReport, error) {
	if err := o.Validate(); err != nil {
		return ReconciliationReport{}, err
	}

	deliveredByKey, err := r.sumDeliveredQuantities(deliveries)
	if err != nil {
		return ReconciliationReport{}, err
	}

	totalOrdered := kernel.ZeroQuantity()
	totalDelivered := kernel.ZeroQuantity()

	orderItems := o.Items()
	items := make([]ItemFulfillment, 0, len(orderItems))
	for _, item := range orderItems {
		key := matchingKey{productName: item.ProductName(), unit: item.Unit()}

		rawDelivered, ok := deliveredByKey[key]
		if !ok {
			rawDelivered = kernel.ZeroQuantity()
		}

		totalOrdered = totalOrdered.Add(item.Quantity())
		totalDelivered = totalDelivered.Add(rawDelivered.Min(item.Quantity()))

		items = append(items, ItemFulfillment{
			ProductName: item.ProductName(),
			Unit:        item.Unit(),
			Ordered:     item.Quantity(),
			Delivered:   rawDelivered,
		})
	}

	return ReconciliationReport{
		Status:          order.DeriveFulfillmentStatus(totalOrdered, totalDelivered),
		TotalOrdered:    totalOrdered,
		TotalDelivered:  totalDelivered,
		PercentComplete: percentComplete(totalOrdered, totalDelivered),
		Items:           items,
	}, nil
}

// sumDeliveredQuantities totals the delivered amounts per matching key across
// all deliveries in Delivered status.
func (r Reconciler) sumDeliveredQuantities(
	deliveries []*delivery.Delivery,
) (map[matchingKey]kernel.Quantity, error) {
	deliveredByKey := make(map[matchingKey]kernel.Quantity)

	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if !d.IsDelivered() {
			continue
		}

		for _, item := range d.Items() {
			key := matchingKey{productName: item.ProductName(), unit: item.Unit()}

			current, ok := deliveredByKey[key]
			if !ok {
				current = kernel.ZeroQuantity()
			}
			deliveredByKey[key] = current.Add(item.Quantity())
		}
	}

	return deliveredByKey, nil
}

func percentComplete(totalOrdered, totalDelivered kernel.Quantity) float64 {
	if !totalOrdered.IsPositive() {
		return 0
	}

	return totalDelivered.Decimal().
		Div(totalOrdered.Decimal()).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}
