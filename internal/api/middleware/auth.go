package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/catalog-api/internal/api/metrics"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// Context keys under which the Auth middleware stores the verified claims.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects its claims into the echo
// context. Malformed, expired and badly-signed tokens all collapse to 401;
// the distinct reasons exist for the token service's own tests, not for
// callers.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credentials").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credentials").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
