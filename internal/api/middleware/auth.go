package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/core/ports"
)

// Context keys under which the verified identity is stored.
const (
	CtxUserID    = "user_id"
	CtxUserName  = "user_name"
	CtxUserEmail = "user_email"
)

// RequireAuth verifies the bearer token and injects the identity into the
// request context. A missing or malformed Authorization header halts with 401
// before any verification is attempted.
func RequireAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid token")
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxUserName, identity.Name)
			c.Set(CtxUserEmail, identity.Email)

			return next(c)
		}
	}
}

// OptionalAuth attaches the identity when a valid bearer token is present but
// never halts the request: an absent or invalid token just means the caller
// stays anonymous. Used on public endpoints that personalise behaviour for
// authenticated callers.
func OptionalAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if identity, err := tokens.Verify(token); err == nil {
					c.Set(CtxUserID, identity.UserID)
					c.Set(CtxUserName, identity.Name)
					c.Set(CtxUserEmail, identity.Email)
				}
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
