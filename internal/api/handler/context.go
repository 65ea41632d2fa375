package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/api/middleware"
	"github.com/inkworks/contentforge/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// proves the middleware ran and verified the token.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get(middleware.CtxUserName).(string)
	email, _ := c.Get(middleware.CtxUserEmail).(string)

	return domain.Identity{UserID: userID, Name: name, Email: email}, nil
}
