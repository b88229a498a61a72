package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct processing workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//
// The machine is strictly forward-only: no transition ever moves an order
// back to an earlier state, and no state is skipped once processing has
// started. Completed is terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first submitted.
	// Orders in this status are waiting to be picked up by the processor.
	Pending

	// Processing indicates the processor has started working on the order.
	Processing

	// Completed indicates the order has been fully processed.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the wire format in HTTP responses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database rows) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// Returns "PENDING", "PROCESSING", or "COMPLETED" for valid statuses and
// "UNKNOWN" for anything else. Implements fmt.Stringer and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing
//
// Any other source state is rejected: Processing and Completed orders have
// already moved past this point and Unknown is not a valid state at all.
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
//
// Invalid transitions:
//   - Pending -> Completed (must pass through Processing first)
//   - Completed -> Completed (already completed)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Completed
}
