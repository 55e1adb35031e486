package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/campus-portal/internal/api/middleware"
	"github.com/campushub/campus-portal/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. Its presence proves the middleware
// ran; a handler reached without it is a wiring bug and gets a 401 rather
// than an unauthenticated pass-through.
func ctxIdentity(c echo.Context) (domain.SessionInfo, error) {
	info, ok := c.Get(middleware.ContextIdentity).(domain.SessionInfo)
	if !ok || info.UserID == "" {
		return domain.SessionInfo{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return info, nil
}

// ctxToken returns the raw session token of the admitted request.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextToken).(string)
	return token
}
