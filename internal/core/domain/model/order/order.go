package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Validation bounds for order attributes. The boundary layer may pre-check
// request payloads against the same bounds, but the aggregate enforces them
// regardless, so no out-of-bounds row can ever be persisted.
const (
	MinItemNameLength = 2
	MaxItemNameLength = 50
	MinQuantity       = 1
	MaxQuantity       = 100
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from submission through processing to completion.
//
// Order follows these invariants:
//   - Must reference exactly one owning user, immutable for its lifetime
//   - Item name length must be within [MinItemNameLength, MaxItemNameLength]
//   - Quantity must be within [MinQuantity, MaxQuantity]
//   - Status transitions are strictly forward: Pending -> Processing -> Completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The numeric identifier is assigned by the store on first insert; a freshly
// submitted order carries ID 0 until AssignID is called by the repository.
type Order struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64

	// ownerID references the owning user; immutable once set
	ownerID int64

	// itemName is the name of the ordered item
	itemName string

	// quantity is the ordered amount
	quantity int

	// status represents the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a not-yet-persisted order, ensuring all business
// invariants hold before a row can be durably created.
//
// Parameters:
//   - ownerID: Identifier of the owning user (must be positive)
//   - itemName: Name of the ordered item (2-50 characters)
//   - quantity: Ordered amount (1-100 inclusive)
//
// Returns the created order, or a validation error if any parameter is
// out of bounds.
//
// Example:
//
//	o, err := order.NewOrder(userID, "Widget", 3)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(ownerID int64, itemName string, quantity int) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOwnerID(ownerID),
		o.setItemName(itemName),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts an already-assigned identifier and an arbitrary
// (but valid) status. It is intended for repository use when mapping database
// rows back to domain aggregates.
func RestoreOrder(id, ownerID int64, itemName string, quantity int, status Status) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItemName(itemName),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
// Call it when receiving orders across package boundaries.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their store-assigned identifiers.
// Orders are considered equal if they have the same non-zero ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, 0 for a not-yet-persisted order.
func (o *Order) ID() int64 {
	return o.id
}

// OwnerID returns the identifier of the owning user.
func (o *Order) OwnerID() int64 {
	return o.ownerID
}

// ItemName returns the name of the ordered item.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the ordered amount.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignID sets the store-assigned identifier after the first insert.
// It may be called exactly once, by the repository, on an order whose ID is
// still 0. Reassigning an identifier is an invariant violation.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive identifier", id))
	}

	o.id = id
	return nil
}

// StartProcessing moves the order from Pending to Processing.
//
// Returns an error if the order is not in Pending status. The forward-only
// lifecycle invariant means a Processing or Completed order can never be
// moved back here.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as fully processed.
//
// The order must be in Processing status; Completed is a terminal state with
// no further transitions.
//
// Example:
//
//	if err := o.StartProcessing(); err != nil { ... }
//	// ... simulated work ...
//	if err := o.Complete(); err != nil { ... }
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the store-assigned identifier during restore.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive identifier", id))
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning user reference.
func (o *Order) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("owner id", fmt.Errorf("%d is not a positive identifier", ownerID))
	}
	o.ownerID = ownerID
	return nil
}

// setItemName validates the item name length bounds and sets the name.
func (o *Order) setItemName(itemName string) error {
	length := utf8.RuneCountInString(itemName)
	if length < MinItemNameLength || length > MaxItemNameLength {
		return errs.NewValueIsOutOfRangeError("item_name length", length, MinItemNameLength, MaxItemNameLength)
	}
	o.itemName = itemName
	return nil
}

// setQuantity validates the quantity bounds and sets the amount.
func (o *Order) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

// setStatus validates and sets the status during restore.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
