package queries

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderFulfillmentQueryHandler builds the fulfillment read model for a
// single order straight from the database. Order lines are aggregated by
// product name and unit, then matched against the summed quantities of
// deliveries that have reached Delivered status. Matching is exact and
// case sensitive on both fields.
type GetOrderFulfillmentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderFulfillmentQueryHandler creates a handler for fulfillment queries.
// Requires a GORM database connection for query execution.
func NewGetOrderFulfillmentQueryHandler(db *gorm.DB) GetOrderFulfillmentQueryHandler {
	return GetOrderFulfillmentQueryHandler{db: db}
}

// Handle executes the fulfillment query for one order.
// Returns errs.ErrObjectNotFound if the order does not exist. Per-line
// delivered quantities are reported raw; each line contributes at most its
// ordered quantity to the overall totals and completion percentage.
func (h GetOrderFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFulfillmentQuery,
) (GetOrderFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE id = ?
	`, query.OrderID().String()).Scan(&exists).Error
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}
	if exists == 0 {
		return GetOrderFulfillmentQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	orderedLines, err := h.fetchOrderedLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	deliveredByLine, err := h.fetchDeliveredSums(ctx, query.OrderID())
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	response := GetOrderFulfillmentQueryResponse{
		OrderID:        query.OrderID(),
		TotalOrdered:   kernel.ZeroQuantity(),
		TotalDelivered: kernel.ZeroQuantity(),
		Items:          make([]OrderFulfillmentItemResponse, 0, len(orderedLines)),
	}

	for _, line := range orderedLines {
		delivered := deliveredByLine[fulfillmentLineKey{line.ProductName, line.Unit}]
		ordered, qtyErr := kernel.NewQuantity(line.Quantity)
		if qtyErr != nil {
			return GetOrderFulfillmentQueryResponse{}, qtyErr
		}
		raw, qtyErr := kernel.NewQuantity(delivered)
		if qtyErr != nil {
			return GetOrderFulfillmentQueryResponse{}, qtyErr
		}

		response.Items = append(response.Items, OrderFulfillmentItemResponse{
			ProductName: line.ProductName,
			Unit:        line.Unit,
			Ordered:     ordered,
			Delivered:   raw,
		})

		response.TotalOrdered = response.TotalOrdered.Add(ordered)
		response.TotalDelivered = response.TotalDelivered.Add(raw.Min(ordered))
	}

	response.Status = order.DeriveFulfillmentStatus(response.TotalOrdered, response.TotalDelivered)
	response.PercentComplete = fulfillmentPercent(response.TotalOrdered, response.TotalDelivered)

	return response, nil
}

type fulfillmentLineKey struct {
	productName string
	unit        string
}

type orderedLine struct {
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
}

func (h GetOrderFulfillmentQueryHandler) fetchOrderedLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]orderedLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			unit,
			SUM(quantity)
		FROM order_items
		WHERE order_id = ?
		GROUP BY product_name, unit
		ORDER BY product_name, unit
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]orderedLine, 0)

	for rows.Next() {
		var line orderedLine
		if err = rows.Scan(&line.ProductName, &line.Unit, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetOrderFulfillmentQueryHandler) fetchDeliveredSums(
	ctx context.Context,
	orderID kernel.UUID,
) (map[fulfillmentLineKey]decimal.Decimal, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			di.product_name,
			di.unit,
			SUM(di.quantity)
		FROM delivery_items di
		JOIN deliveries d ON d.id = di.delivery_id
		WHERE d.order_id = ? AND d.status = ?
		GROUP BY di.product_name, di.unit
	`, orderID.String(), delivery.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[fulfillmentLineKey]decimal.Decimal)

	for rows.Next() {
		var productName, unit string
		var quantity decimal.Decimal

		if err = rows.Scan(&productName, &unit, &quantity); err != nil {
			return nil, err
		}
		sums[fulfillmentLineKey{productName, unit}] = quantity
	}

	return sums, rows.Err()
}

func fulfillmentPercent(totalOrdered, totalDelivered kernel.Quantity) float64 {
	if !totalOrdered.IsPositive() {
		return 0
	}

	return totalDelivered.Decimal().
		Div(totalOrdered.Decimal()).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}
