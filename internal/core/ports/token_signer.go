package ports

import (
	"orders/internal/core/domain/model/user"
)

// TokenSigner issues and resolves session tokens.
//
// The token is an opaque signed credential carrying the user identity and an
// expiry. Resolution verifies the signature and expiry and recovers the user
// identifier; it never consults the store, so a resolved ID must still be
// looked up by the caller.
type TokenSigner interface {
	// Sign issues a token for the given user.
	Sign(u *user.User) (string, error)

	// Parse verifies a token and returns the embedded user identifier.
	// Returns an unauthorized error for malformed, tampered, or expired tokens.
	Parse(token string) (int64, error)
}
