package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single owner-scoped order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Both the id and the owner filter apply in the
// same predicate, so a foreign-owned id fails with the same not-found error
// as an id that was never issued.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var row struct {
		ID       int64
		ItemName string
		Quantity int
		Status   int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			quantity,
			status
		FROM orders
		WHERE id = ? AND user_id = ?
	`, query.OrderID(), query.OwnerID()).Scan(&row)
	if result.Error != nil {
		return OrderQueryResponse{}, result.Error
	}

	if result.RowsAffected == 0 {
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return OrderQueryResponse{
		ID:       row.ID,
		ItemName: row.ItemName,
		Quantity: row.Quantity,
		Status:   order.Status(row.Status).String(),
	}, nil
}
