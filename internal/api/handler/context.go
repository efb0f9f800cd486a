package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop/webshop-api/internal/api/middleware"
	"github.com/webshop/webshop-api/internal/core/domain"
)

// currentUser extracts the user injected by the BasicAuth middleware. A
// missing user means the route was wired without the auth middleware; failing
// with 401 keeps that misconfiguration from ever granting access.
func currentUser(c echo.Context) (*domain.User, error) {
	u, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return u, nil
}
