package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrSeedUsersCommandIsNotConstructed = errors.New(
		"SeedUsersCommand must be created via NewSeedUsersCommand constructor",
	)
)

// UserSeed is a (username, plaintext password) pair used only at startup.
// The password is hashed before anything is written to the store.
type UserSeed struct {
	Username string
	Password string
}

// DefaultUserSeeds returns the fixed seed set written to an empty user store
// on first startup.
func DefaultUserSeeds() []UserSeed {
	return []UserSeed{
		{Username: "alice", Password: "wonderland"},
		{Username: "bob", Password: "builder"},
	}
}

// SeedUsersCommand represents the startup request to populate an empty user
// store with a fixed set of credentials. Seeding is idempotent: a second
// startup against a non-empty store performs no writes.
type SeedUsersCommand struct { //nolint:recvcheck //using for validation
	seeds []UserSeed

	guard guard.ConstructorGuard
}

// NewSeedUsersCommand creates a command to seed the given credential pairs.
// Every seed must carry a username and a password.
func NewSeedUsersCommand(seeds []UserSeed) (SeedUsersCommand, error) {
	if len(seeds) == 0 {
		return SeedUsersCommand{}, errs.NewValueIsRequiredError("seeds")
	}

	for _, seed := range seeds {
		if seed.Username == "" {
			return SeedUsersCommand{}, errs.NewValueIsRequiredError("seed username")
		}
		if seed.Password == "" {
			return SeedUsersCommand{}, errs.NewValueIsRequiredError("seed password")
		}
	}

	return SeedUsersCommand{
		seeds: seeds,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSeedUsersCommandIsNotConstructed if validation fails.
func (c SeedUsersCommand) Validate() error {
	return c.guard.Validate(ErrSeedUsersCommandIsNotConstructed)
}

// Seeds returns the credential pairs to seed.
func (c SeedUsersCommand) Seeds() []UserSeed {
	return c.seeds
}
