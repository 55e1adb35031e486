package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/campus-portal/internal/api/middleware"
)

// CookieConfig fixes the session cookie attributes for the deployment.
// MaxAge always equals the session TTL; Secure is on whenever the
// deployment terminates TLS (i.e. anything but plain local HTTP).
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// setSessionCookie attaches the session token as an HTTP-only, same-site
// cookie. The token is the only login state the client holds; everything
// else lives server-side.
func setSessionCookie(c echo.Context, cfg CookieConfig, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c echo.Context, cfg CookieConfig) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
