package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session"

// Context keys set by Auth for downstream handlers.
const (
	ContextIdentity = "identity"
	ContextToken    = "session_token"
)

// Auth validates the session cookie and injects the server-derived identity
// into the request context. All failure modes (no cookie, unknown token,
// expired session) yield the same generic 401 so callers cannot probe
// session state. Handlers behind this middleware must trust only the
// injected identity, never identity fields from the request body.
func Auth(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			info, err := sessions.Validate(c.Request().Context(), cookie.Value)
			if err != nil {
				if err == domain.ErrUnauthorized {
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
				}
				// Storage failure: surface as 500 via the error handler,
				// never as an auth decision.
				return err
			}

			c.Set(ContextIdentity, info)
			c.Set(ContextToken, cookie.Value)

			return next(c)
		}
	}
}
