// Package router defines how HTTP routes are registered for the API
// and the static storefront.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/handler"
	"github.com/avelez/tireshop/internal/middleware"
	"github.com/avelez/tireshop/internal/session"
)

// RegisterAPI wires the JSON endpoints. Public: login, logout,
// submit-order, inventory. Admin (session required): save-inventory,
// orders, cancel-order, update-order-status. All API responses are
// marked no-store. The limiter sits in front of login only and is a
// no-op unless enabled.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, inv *handler.InventoryHandler,
	ord *handler.OrderHandler, store session.Store, loginLimiter echo.MiddlewareFunc) {

	api := e.Group("/api")
	api.Use(middleware.NoStore)

	api.POST("/login", a.Login, loginLimiter)
	api.POST("/logout", a.Logout)
	api.POST("/submit-order", ord.Submit)
	api.GET("/inventory", inv.List)

	admin := api.Group("")
	admin.Use(middleware.RequireSession(store))
	admin.POST("/save-inventory", inv.Save)
	admin.GET("/orders", ord.List)
	admin.POST("/cancel-order", ord.Cancel)
	admin.POST("/update-order-status", ord.UpdateStatus)
}

// RegisterStatic serves the storefront and admin pages from staticDir
// under /web. The admin pages are behind a redirect guard: browsers
// without a valid session are sent to the login page instead of a bare
// 401. A health check is exposed for load balancers.
func RegisterStatic(e *echo.Echo, staticDir string, store session.Store) {
	e.GET("/healthz", handler.Health)

	pages := e.Group("/web")
	pages.Use(middleware.PageGuard(store, "/web/login.html", "admin.html", "orders.html"))
	pages.Static("", staticDir)
}
