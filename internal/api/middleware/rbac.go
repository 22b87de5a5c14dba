package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/catalog-api/internal/api/metrics"
)

// RequireRole enforces role-based access control. It must run after Auth:
// the caller has already proved an identity, so a role mismatch is 403, not
// 401.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}
			return next(c)
		}
	}
}
