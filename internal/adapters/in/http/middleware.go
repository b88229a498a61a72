package http

import (
	"net/http"
	"strings"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "auth.user_id"

// AuthenticatedUserID returns the user identifier stored by the bearer auth
// middleware, or an unauthorized error when the request never passed it.
func AuthenticatedUserID(ctx echo.Context) (int64, error) {
	userID, ok := ctx.Get(userIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, errs.NewUnauthorizedError("no authenticated user in request context")
	}
	return userID, nil
}

// BearerAuth verifies the Authorization header on every request and rejects
// anything without a valid token. The token subject must resolve to an
// existing user; tokens for deleted users are refused.
func BearerAuth(signer ports.TokenSigner, uowFactory ports.UnitOfWorkFactory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenString, err := extractBearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
			}

			userID, err := signer.Parse(tokenString)
			if err != nil {
				return errorResponse(ctx, http.StatusUnauthorized, "Invalid or expired token")
			}

			uow := uowFactory.Create()
			authUser, err := uow.UserRepository().GetByID(ctx.Request().Context(), userID)
			if err != nil {
				return errorResponse(ctx, http.StatusUnauthorized, "Invalid or expired token")
			}

			ctx.Set(userIDContextKey, authUser.ID())
			return next(ctx)
		}
	}
}

func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errs.NewUnauthorizedError("missing or malformed authorization header")
	}
	return parts[1], nil
}
