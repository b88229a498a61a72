package ports

import (
	"context"

	"orders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate and assigns its store identifier.
	// Fails if the username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByID retrieves a user by store identifier.
	GetByID(ctx context.Context, id int64) (*user.User, error)

	// GetByUsername retrieves a user by exact, case-sensitive username.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// Count returns the number of stored users. Used by the startup seeding
	// to decide whether the seed set needs to be written.
	Count(ctx context.Context) (int64, error)
}
