package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every order belonging to one owner.
// Results are sorted by order id for stable repeated reads.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID int64

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for all orders of the given owner.
func NewListOrdersQuery(ownerID int64) (ListOrdersQuery, error) {
	if ownerID <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("owner id")
	}

	return ListOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting user.
func (q ListOrdersQuery) OwnerID() int64 {
	return q.ownerID
}
