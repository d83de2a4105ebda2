package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/tireshop/internal/middleware"
	"github.com/avelez/tireshop/internal/session"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "ok"})
}

func seededStore(t *testing.T) (session.Store, string) {
	t.Helper()
	store := session.NewMemoryStore()
	tok, err := session.NewToken()
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), tok, "admin"))
	return store, tok
}

func TestRequireSession_RejectsMissingAndInvalidTokens(t *testing.T) {
	store, _ := seededStore(t)
	e := echo.New()
	e.GET("/api/orders", okHandler, middleware.RequireSession(store))

	// no token at all
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// token not in the store
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_AcceptsCookieAndBearer(t *testing.T) {
	store, tok := seededStore(t)
	e := echo.New()
	e.GET("/api/orders", okHandler, middleware.RequireSession(store))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: tok})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPageGuard_RedirectsBrowsersToLogin(t *testing.T) {
	store, tok := seededStore(t)
	e := echo.New()
	g := e.Group("/web")
	g.Use(middleware.PageGuard(store, "/web/login.html", "admin.html", "orders.html"))
	g.GET("/:page", func(c echo.Context) error { return c.String(http.StatusOK, "page") })

	// protected page without a session -> 302 to login
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/web/admin.html", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/web/login.html", rec.Header().Get("Location"))

	// public page passes through
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/web/index.html", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// protected page with a valid session passes through
	req := httptest.NewRequest(http.MethodGet, "/web/orders.html", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: tok})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNoStore_SetsCacheControl(t *testing.T) {
	e := echo.New()
	e.GET("/api/inventory", okHandler, middleware.NoStore)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
