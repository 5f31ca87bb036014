// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by fulfillment status.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ApprovalState     int             `gorm:"type:int;not null"`
	FulfillmentStatus int             `gorm:"type:int;not null;index"`
	QuantityDelivered decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
// Lines are written once when the order is placed and never updated;
// product name and unit together form the matching key for reconciliation.
type OrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Unit        string          `gorm:"type:varchar(64);not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			ProductName: item.ProductName(),
			Unit:        item.Unit(),
			Quantity:    item.Quantity().Decimal(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		CompanyID:         aggregate.CompanyID().Bytes(),
		ApprovalState:     int(aggregate.ApprovalState()),
		FulfillmentStatus: int(aggregate.FulfillmentStatus()),
		QuantityDelivered: aggregate.QuantityDelivered().Decimal(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		quantity, qtyErr := kernel.NewQuantity(itemDto.Quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}

		item, itemErr := order.NewItem(itemDto.ProductName, itemDto.Unit, quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	quantityDelivered, err := kernel.NewQuantity(dto.QuantityDelivered)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		companyID,
		items,
		order.ApprovalState(dto.ApprovalState),
		order.FulfillmentStatus(dto.FulfillmentStatus),
		quantityDelivered,
		dto.UpdatedAt,
	)
}
