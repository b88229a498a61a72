package user

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// the NewUser or RestoreUser factory functions.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrUserIDAlreadyAssigned is returned when AssignID is called on a user
	// that already carries a store-assigned identifier.
	ErrUserIDAlreadyAssigned = errors.New("user ID is already assigned")
)

// User represents an account that can authenticate and own orders.
//
// Invariants:
//   - Username is unique (enforced by the store) and case-sensitive
//   - Username and password hash are required
//   - Username is immutable after creation; only the password hash may change
//
// Plaintext passwords never reach this type. Hashing happens in the
// authentication service before construction.
type User struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64

	// username is the unique, case-sensitive login name
	username string

	// passwordHash is the one-way salted hash of the password
	passwordHash string

	guard guard.ConstructorGuard
}

// NewUser creates a new User with validation. The password hash must already
// be computed by the caller.
func NewUser(username, passwordHash string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
// It is intended for repository use when mapping database rows back to
// domain aggregates.
func RestoreUser(id int64, username, passwordHash string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through a factory.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}

	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their store-assigned identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id != 0 && u.id == other.id
}

// ID returns the store-assigned identifier, 0 for a not-yet-persisted user.
func (u *User) ID() int64 {
	return u.id
}

// Username returns the unique, case-sensitive login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the one-way salted hash of the password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// AssignID sets the store-assigned identifier after the first insert.
// It may be called exactly once, by the repository, on a user whose ID is still 0.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return ErrUserIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not a positive identifier", id))
	}

	u.id = id
	return nil
}

// ChangePasswordHash replaces the stored password hash.
// The password hash is the only mutable attribute of a user.
func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not a positive identifier", id))
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
