package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Read methods come in two flavors: owner-scoped lookups used by the HTTP
// surface, and unscoped lookups reserved for the lifecycle processor. An
// owner-scoped lookup must answer identically for an absent order and for an
// order owned by someone else, so existence is never revealed across owners.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier without an ownership filter.
	// Internal use only: the lifecycle processor loads orders this way.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForOwner retrieves an order only if it belongs to the given owner.
	// An order owned by another user yields the same not-found error as an
	// absent order.
	GetForOwner(ctx context.Context, id, ownerID int64) (*order.Order, error)

	// ListForOwner retrieves all orders belonging to the given owner.
	ListForOwner(ctx context.Context, ownerID int64) ([]*order.Order, error)

	// GetUnfinishedBefore retrieves orders still in Pending or Processing
	// status whose last update is older than the given cutoff. Used by the
	// recovery sweep to re-dispatch orders whose processing task was lost.
	GetUnfinishedBefore(ctx context.Context, updatedBefore time.Time) ([]*order.Order, error)
}
