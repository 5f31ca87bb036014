// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Indexed by order for the reconciliation read path.
type DeliveryDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Status      int               `gorm:"type:int;not null"`
	DeliveredAt *time.Time        `gorm:""`
	Items       []DeliveryItemDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// DeliveryItemDTO represents one delivery line in the database.
// Lines are written once when the delivery is recorded and never updated.
type DeliveryItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	DeliveryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Unit        string          `gorm:"type:varchar(64);not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null"`
}

// TableName specifies the database table name for delivery line entities.
// Overrides GORM's default naming convention to use "delivery_items".
func (DeliveryItemDTO) TableName() string {
	return "delivery_items"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	deliveryID := aggregate.ID().Bytes()
	items := make([]DeliveryItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, DeliveryItemDTO{
			DeliveryID:  deliveryID,
			ProductName: item.ProductName(),
			Unit:        item.Unit(),
			Quantity:    item.Quantity().Decimal(),
		})
	}

	return DeliveryDTO{
		ID:          deliveryID,
		OrderID:     aggregate.OrderID().Bytes(),
		Status:      int(aggregate.Status()),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]delivery.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		quantity, qtyErr := kernel.NewQuantity(itemDto.Quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}

		item, itemErr := delivery.NewItem(itemDto.ProductName, itemDto.Unit, quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		items,
		delivery.Status(dto.Status),
		dto.DeliveredAt,
	)
}
