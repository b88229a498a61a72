// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database connection, bypassing the
// aggregate repositories and the unit of work used by the write side.
package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// LoginQuery represents a credential check that exchanges a username/password
// pair for a session token. It reads the credential store but modifies
// nothing, which is why it lives on the query side.
//
// Example:
//
//	query, err := NewLoginQuery("alice", "wonderland")
//	if err != nil {
//	    return err
//	}
//
//	session, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrInvalidCredentials) {
//	    // identical failure for unknown user and wrong password
//	}
type LoginQuery struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a query carrying the submitted credentials.
// Both fields are required; content validation happens against the store.
func NewLoginQuery(username, password string) (LoginQuery, error) {
	if username == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginQueryIsNotConstructed if validation fails.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Username returns the submitted login name.
func (q LoginQuery) Username() string {
	return q.username
}

// Password returns the submitted plaintext password.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse carries the issued session token.
// TokenType is always "bearer", matching how the token must be presented
// on subsequent requests.
type LoginQueryResponse struct {
	AccessToken string
	TokenType   string
}
