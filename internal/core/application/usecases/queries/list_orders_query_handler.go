package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves all orders belonging to one owner.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(currentUser.ID())
//
//	owned, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders\n", len(owned))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for owner-scoped order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Only rows carrying the owner's user id are
// visible; other owners' orders never appear regardless of their ids.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			quantity,
			status
		FROM orders
		WHERE user_id = ?
		ORDER BY id
	`, query.OwnerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       int64
			itemName string
			quantity int
			status   int
		)

		if err = rows.Scan(&id, &itemName, &quantity, &status); err != nil {
			return nil, err
		}

		responses = append(responses, OrderQueryResponse{
			ID:       id,
			ItemName: itemName,
			Quantity: quantity,
			Status:   order.Status(status).String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
