package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/webshop/webshop-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// BasicAuth: an unauthenticated request is challenged there and never
// reaches this gate, so a 403 here always means "known user, wrong tier".
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRoleKey).(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
