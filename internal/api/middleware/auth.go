package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webshop/webshop-api/internal/api/metrics"
	"github.com/webshop/webshop-api/internal/core/ports"
)

// Context keys under which BasicAuth stores the resolved user.
const (
	ContextUserKey = "user"
	ContextRoleKey = "role"
)

// BasicAuth resolves the Authorization header to a user record and injects it
// into the request context. Absent or unverifiable credentials produce the
// Basic challenge; only a store fault becomes an error response without one.
func BasicAuth(auth ports.Authenticator, realm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := parseBasicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return Challenge(c, realm)
			}

			user, err := auth.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				return err
			}
			if user == nil {
				metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
				return Challenge(c, realm)
			}

			metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
			c.Set(ContextUserKey, user)
			c.Set(ContextRoleKey, string(user.Role))
			return next(c)
		}
	}
}

// Challenge answers 401 with a WWW-Authenticate header advertising the Basic
// scheme, instructing the client which credentials to retry with.
func Challenge(c echo.Context, realm string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="`+realm+`"`)
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

// parseBasicCredentials extracts (email, password) from an Authorization
// header value. A missing header, wrong scheme, undecodable or empty payload
// all report ok=false — absence, not an error. The decoded payload is split
// once on the first ':' so passwords may contain colons.
func parseBasicCredentials(header string) (email, password string, ok bool) {
	scheme, payload, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "basic") {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil || len(raw) == 0 {
		return "", "", false
	}

	email, password, found = strings.Cut(string(raw), ":")
	if !found {
		return "", "", false
	}
	return email, password, true
}
