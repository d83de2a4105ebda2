package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/tireshop/internal/auth"
	"github.com/avelez/tireshop/internal/handler"
	"github.com/avelez/tireshop/internal/middleware"
	"github.com/avelez/tireshop/internal/session"
)

func newAuthEnv() (*echo.Echo, *session.MemoryStore) {
	store := session.NewMemoryStore()
	creds := auth.StaticCredentials{Username: "admin", Password: "hunter2"}
	h := handler.NewAuthHandler(creds, store)

	e := echo.New()
	e.POST("/api/login", h.Login)
	e.POST("/api/logout", h.Logout)
	return e, store
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin_IssuesTokenValidUntilLogout(t *testing.T) {
	e, store := newAuthEnv()

	rec := postJSON(e, "/api/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	// the token is live in the store
	_, ok, err := store.Identity(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.True(t, ok)

	// and delivered as an HttpOnly cookie too
	cookies := rec.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == middleware.CookieName {
			found = true
			assert.Equal(t, resp.Token, ck.Value)
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "session cookie not set")

	// logout revokes it
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	out := httptest.NewRecorder()
	e.ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code)

	_, ok, err = store.Identity(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.False(t, ok, "token must be rejected after logout")
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	e, _ := newAuthEnv()

	rec := postJSON(e, "/api/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(e, "/api/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_IsIdempotent(t *testing.T) {
	e, _ := newAuthEnv()

	// no session at all: still a 200
	rec := postJSON(e, "/api/logout", ``)
	assert.Equal(t, http.StatusOK, rec.Code)
}
