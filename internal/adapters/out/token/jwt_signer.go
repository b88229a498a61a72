// Package token implements the TokenSigner port with HMAC-signed JWTs.
package token

import (
	"errors"
	"strconv"
	"time"

	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "orders"

// Claims carries the authenticated user identity inside the token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTSigner issues and verifies HMAC-SHA256 signed tokens.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

var ErrEmptySecret = errors.New("token secret must not be empty")

// NewJWTSigner creates a signer with the given shared secret and token lifetime.
func NewJWTSigner(secret string, ttl time.Duration) (*JWTSigner, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}
	return &JWTSigner{secret: []byte(secret), ttl: ttl}, nil
}

// Sign issues a token for the given user.
func (s *JWTSigner) Sign(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Username: u.Username(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID(), 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and returns the embedded user identifier.
// Any failure (malformed token, wrong signature, expired) yields an
// unauthorized error without distinguishing the cause to the caller.
func (s *JWTSigner) Parse(tokenString string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, errs.NewUnauthorizedErrorWithCause("token verification failed", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, errs.NewUnauthorizedError("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errs.NewUnauthorizedError("invalid token subject")
	}

	return userID, nil
}
