package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/cinelog/catalog-api/internal/api/middleware"
)

// actorClaims holds the identity the Auth middleware attached to the request.
type actorClaims struct {
	UserID   string
	Username string
	Role     string
}

// ctxActor extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the middleware
// did not run on this route.
func ctxActor(c echo.Context) (actorClaims, error) {
	userID, _ := c.Get(appmiddleware.CtxUserID).(string)
	if userID == "" {
		return actorClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(appmiddleware.CtxUsername).(string)
	role, _ := c.Get(appmiddleware.CtxRole).(string)
	return actorClaims{UserID: userID, Username: username, Role: role}, nil
}
