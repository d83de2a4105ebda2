package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelez/tireshop/internal/auth"
	"github.com/avelez/tireshop/internal/middleware"
	"github.com/avelez/tireshop/internal/session"
)

// AuthHandler bundles dependencies for the login and logout endpoints.
type AuthHandler struct {
	Creds    auth.CredentialVerifier
	Sessions session.Store
}

func NewAuthHandler(creds auth.CredentialVerifier, sessions session.Store) *AuthHandler {
	return &AuthHandler{Creds: creds, Sessions: sessions}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the admin credential, creates a session and hands the
// token back both in the JSON body and as an HttpOnly cookie. A
// mismatch gets a plain 401 with no lockout or delay.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "username/password required"})
	}
	if !h.Creds.Verify(req.Username, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid credentials"})
	}

	token, err := session.NewToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "issue token failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Sessions.Put(ctx, token, req.Username); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "save session failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "logged in", "token": token})
}

// Logout removes the caller's session token from the store, if present.
// Absence of the token is not an error; logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.TokenFromRequest(c); token != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		_ = h.Sessions.Delete(ctx, token)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "logged out"})
}
