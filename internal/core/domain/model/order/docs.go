// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders belong to exactly one user, immutable for their lifetime
//   - Item name length and quantity are bounded at construction time
//   - Order status follows a strictly forward workflow: Pending -> Processing -> Completed
//   - Orders can only be completed from the Processing status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
