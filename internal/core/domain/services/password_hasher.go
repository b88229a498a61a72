package services

import (
	"orders/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is a domain service for one-way salted password hashing.
//
// It wraps bcrypt with a fixed work factor. Every Hash call draws a fresh
// random salt, so hashing the same plaintext twice yields different hash
// values that both verify against the original plaintext.
//
// Example usage:
//
//	hasher := services.NewPasswordHasher()
//	hash, err := hasher.Hash("wonderland")
//	if err != nil {
//	    return err
//	}
//	ok := hasher.Verify("wonderland", hash) // true
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the default bcrypt cost.
func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{cost: bcrypt.DefaultCost}
}

// NewPasswordHasherWithCost creates a PasswordHasher with an explicit bcrypt cost.
// Tests use a low cost to keep hashing fast; production code should use
// NewPasswordHasher.
func NewPasswordHasherWithCost(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return PasswordHasher{}, errs.NewValueIsOutOfRangeError("bcrypt cost", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return PasswordHasher{cost: cost}, nil
}

// Hash computes a salted one-way hash of the plaintext password.
func (h PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// The salt and cost parameters embedded in the hash drive the comparison.
func (h PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
