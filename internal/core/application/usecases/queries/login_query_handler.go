package queries

import (
	"context"

	"orders/internal/core/domain/model/user"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// LoginQueryHandler authenticates a user and issues a session token.
//
// The failure mode is deliberately uniform: an unknown username and a wrong
// password both yield errs.ErrInvalidCredentials, so callers cannot probe
// which usernames exist.
type LoginQueryHandler struct {
	db     *gorm.DB
	hasher services.PasswordHasher
	signer ports.TokenSigner
}

// NewLoginQueryHandler creates a handler for login requests.
// Requires a database connection for the credential lookup, the password
// hasher for verification, and a token signer for issuing the session token.
func NewLoginQueryHandler(db *gorm.DB, hasher services.PasswordHasher, signer ports.TokenSigner) LoginQueryHandler {
	return LoginQueryHandler{
		db:     db,
		hasher: hasher,
		signer: signer,
	}
}

// Handle verifies the submitted credentials against the stored hash and,
// on success, returns a freshly signed bearer token.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var row struct {
		ID           int64
		Username     string
		PasswordHash string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Scan(&row).Error
	if err != nil {
		return LoginQueryResponse{}, err
	}

	// Scan leaves the row zeroed when no record matched. Verification against
	// the empty hash fails, so the absent-user path and the wrong-password
	// path are indistinguishable to the caller.
	if !h.hasher.Verify(query.Password(), row.PasswordHash) {
		return LoginQueryResponse{}, errs.ErrInvalidCredentials
	}

	account, err := user.RestoreUser(row.ID, row.Username, row.PasswordHash)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	token, err := h.signer.Sign(account)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
