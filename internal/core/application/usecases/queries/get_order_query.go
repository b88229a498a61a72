package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order scoped to its owner.
//
// The owner id comes from the resolved session token, never from the request.
// An order that exists but belongs to another user answers exactly like an
// absent order, so ids cannot be probed across owners.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order belonging to one owner.
func NewGetOrderQuery(orderID, ownerID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}
	if ownerID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("owner id")
	}

	return GetOrderQuery{
		orderID: orderID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OwnerID returns the identifier of the requesting user.
func (q GetOrderQuery) OwnerID() int64 {
	return q.ownerID
}

// OrderQueryResponse represents one order as exposed to its owner.
// Status carries the wire format ("PENDING", "PROCESSING", "COMPLETED").
type OrderQueryResponse struct {
	ID       int64
	ItemName string
	Quantity int
	Status   string
}
