package commands

import (
	"context"

	"orders/internal/core/domain/model/user"
	"orders/internal/core/domain/services"
)

// SeedUsersCommandHandler populates an empty user store at startup.
// Each seed password is run through the one-way salted hasher before the row
// is written; plaintext never reaches the store.
//
// The whole seed set is written in one transaction, so a failed startup
// leaves the store empty and the next startup retries from scratch.
type SeedUsersCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     services.PasswordHasher
}

// NewSeedUsersCommandHandler creates a handler for startup user seeding.
func NewSeedUsersCommandHandler(
	uowFactory UserUoWFactory,
	hasher services.PasswordHasher,
) SeedUsersCommandHandler {
	return SeedUsersCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle seeds the user store if and only if it is empty.
// A non-empty store makes this a no-op, keeping the operation idempotent
// across restarts.
func (h *SeedUsersCommandHandler) Handle(ctx context.Context, cmd SeedUsersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return uow.Commit(ctx)
	}

	for _, seed := range cmd.Seeds() {
		hash, hashErr := h.hasher.Hash(seed.Password)
		if hashErr != nil {
			return hashErr
		}

		seeded, userErr := user.NewUser(seed.Username, hash)
		if userErr != nil {
			return userErr
		}

		if err = repo.Add(ctx, seeded); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
