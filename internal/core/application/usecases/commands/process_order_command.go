package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ProcessOrderCommand represents a request to run the asynchronous lifecycle
// transition for a single submitted order. One command is dispatched per
// submission; the recovery sweep may dispatch another for an order whose
// task was lost, which the handler tolerates by acting on the current status.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process the given order.
func NewProcessOrderCommand(orderID int64) (ProcessOrderCommand, error) {
	cmd := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return ProcessOrderCommand{}, errs.NewValueIsRequiredError("order id")
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to process.
func (c ProcessOrderCommand) OrderID() int64 {
	return c.orderID
}
