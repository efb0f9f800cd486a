package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// allowedMethods mirrors the API route table. It drives both the OPTIONS
// responses and the Allow metadata, so the two cannot drift apart.
var allowedMethods = map[string][]string{
	"/api/register":  {http.MethodPost},
	"/api/users":     {http.MethodGet},
	"/api/users/:id": {http.MethodGet, http.MethodPut, http.MethodDelete},
	"/api/products":  {http.MethodGet},
}

// handleOptions answers a preflight/metadata request for a known path with
// 204 and the allowed-method and caching headers.
// See: http://restcookbook.com/HTTP%20Methods/options/
func handleOptions(c echo.Context) error {
	methods, ok := allowedMethods[c.Path()]
	if !ok {
		return echo.ErrNotFound
	}

	joined := strings.Join(methods, ",")
	h := c.Response().Header()
	h.Set("Allow", joined)
	h.Set(echo.HeaderAccessControlAllowMethods, joined)
	h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type,Accept")
	h.Set(echo.HeaderAccessControlExposeHeaders, "Content-Type,Accept")
	h.Set(echo.HeaderAccessControlMaxAge, "86400")

	return c.NoContent(http.StatusNoContent)
}
