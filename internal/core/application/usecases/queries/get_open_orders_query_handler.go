package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves open orders from the database.
// Filters out completed orders to show the active procurement workload.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
// Returns orders whose fulfillment status is not Completed, sorted by
// order ID for consistent output.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			company_id,
			approval_state,
			fulfillment_status,
			quantity_delivered,
			updated_at
		FROM orders
		WHERE fulfillment_status != ?
		ORDER BY id
	`, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenOrdersQueryResponse
		var id, companyID uuid.UUID
		var approvalState, fulfillmentStatus int
		var quantityDelivered decimal.Decimal
		var updatedAt time.Time

		err = rows.Scan(
			&id,
			&companyID,
			&approvalState,
			&fulfillmentStatus,
			&quantityDelivered,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(companyID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CompanyID = ownerID

		delivered, qtyErr := kernel.NewQuantity(quantityDelivered)
		if qtyErr != nil {
			return nil, qtyErr
		}
		orderResp.QuantityDelivered = delivered

		orderResp.ApprovalState = order.ApprovalState(approvalState)
		orderResp.FulfillmentStatus = order.FulfillmentStatus(fulfillmentStatus)
		orderResp.UpdatedAt = updatedAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
