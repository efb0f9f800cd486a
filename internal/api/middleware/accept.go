package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AcceptJSON rejects requests whose Accept header does not admit the JSON
// wire format. The header may carry several comma separated media types;
// any occurrence of application/json or the wildcard is enough.
func AcceptJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accept := c.Request().Header.Get(echo.HeaderAccept)
			if !strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, "*/*") {
				return echo.NewHTTPError(http.StatusNotAcceptable, "only application/json responses are produced")
			}
			return next(c)
		}
	}
}

// RequireJSONBody rejects requests that carry a body without declaring it as
// JSON.
func RequireJSONBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if !strings.Contains(contentType, echo.MIMEApplicationJSON) {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid Content-Type. Expected application/json")
			}
			return next(c)
		}
	}
}
