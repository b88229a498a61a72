// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is assigned by the database sequence, which gives orders
// the strictly increasing identifiers the API exposes. Rows are indexed by
// owner and by status for the two hot read paths: owner-scoped listings and
// the recovery sweep.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ItemName  string `gorm:"size:50;not null"`
	Quantity  int    `gorm:"not null"`
	Status    int    `gorm:"not null;index"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID(),
		ItemName: aggregate.ItemName(),
		Quantity: aggregate.Quantity(),
		Status:   int(aggregate.Status()),
		UserID:   aggregate.OwnerID(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.UserID, dto.ItemName, dto.Quantity, order.Status(dto.Status))
}
