package commands

import (
	"errors"
	"unicode/utf8"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a request to submit a new order on behalf of
// an authenticated user. The owner is the user resolved from the session
// token, never taken from the request body.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(currentUser.ID(), "Widget", 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %d submitted in %s status", created.ID(), created.Status())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID  int64
	itemName string
	quantity int

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that the owner id is positive, the item name length is within
// bounds, and the quantity is within bounds. Returns an error if any
// validation fails.
func NewSubmitOrderCommand(ownerID int64, itemName string, quantity int) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OwnerID returns the identifier of the submitting user.
func (c SubmitOrderCommand) OwnerID() int64 {
	return c.ownerID
}

// ItemName returns the name of the ordered item.
func (c SubmitOrderCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the ordered amount.
func (c SubmitOrderCommand) Quantity() int {
	return c.quantity
}

func (c *SubmitOrderCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsRequiredError("owner id")
	}

	c.ownerID = ownerID
	return nil
}

func (c *SubmitOrderCommand) setItemName(itemName string) error {
	length := utf8.RuneCountInString(itemName)
	if length < order.MinItemNameLength || length > order.MaxItemNameLength {
		return errs.NewValueIsOutOfRangeError(
			"item_name length", length, order.MinItemNameLength, order.MaxItemNameLength,
		)
	}

	c.itemName = itemName
	return nil
}

func (c *SubmitOrderCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	c.quantity = quantity
	return nil
}
