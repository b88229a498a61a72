package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command so
// concurrent operations never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. It owns the transaction
// lifecycle and hands out repositories bound to the active transaction;
// callers must pair every Begin with a Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a database transaction.
	Begin(ctx context.Context) error

	// Commit ends the active transaction, persisting all changes.
	// Errors when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the active transaction.
	// Errors when no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the active
	// transaction, or to the bare connection before Begin.
	OrderRepository() OrderRepository

	// UserRepository returns a user repository bound to the active
	// transaction, or to the bare connection before Begin.
	UserRepository() UserRepository
}
