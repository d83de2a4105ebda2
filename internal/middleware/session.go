package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/session"
)

// CookieName is the session cookie set at login. The token is also
// accepted as an Authorization bearer header; clients treat it as an
// opaque credential either way.
const CookieName = "session_token"

// TokenFromRequest extracts the session token from the request, cookie
// first, then the Authorization header. Returns "" when absent.
func TokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireSession guards admin JSON endpoints. A request without a
// currently valid session token is rejected with 401 before any other
// work happens. On success the identity is stored in the context under
// "identity".
func RequireSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
			}
			identity, ok, err := store.Identity(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "session lookup failed"})
			}
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
			}
			c.Set("identity", identity)
			return next(c)
		}
	}
}

// PageGuard protects admin HTML pages. Unlike the JSON gate it answers
// with a 302 redirect to the login page, since the caller is a browser
// following links. Only the named page files are protected; everything
// else under the static tree stays public.
func PageGuard(store session.Store, loginPath string, protected ...string) echo.MiddlewareFunc {
	guarded := make(map[string]bool, len(protected))
	for _, p := range protected {
		guarded[p] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !guarded[path.Base(c.Request().URL.Path)] {
				return next(c)
			}
			token := TokenFromRequest(c)
			if token != "" {
				if _, ok, err := store.Identity(c.Request().Context(), token); err == nil && ok {
					return next(c)
				}
			}
			return c.Redirect(http.StatusFound, loginPath)
		}
	}
}

// NoStore marks API responses as uncacheable, matching the behavior of
// the storefront's original server.
func NoStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "no-store")
		return next(c)
	}
}
