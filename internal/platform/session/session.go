// Package session persists the bearer token and role tag in browser
// cookies. It is deliberately a plain manager object passed through
// handler wiring rather than an ambient global, so tests and
// concurrent requests stay isolated.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	TokenCookie = "auth_token"
	RoleCookie  = "user_role"

	// MaxAge matches the 8-hour session the frontend has always used.
	MaxAge = 8 * time.Hour
)

type Manager struct {
	secure bool
}

// NewManager creates a session manager. secure controls the cookie
// Secure flag; it is disabled only in local development.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteStrictMode,
		Secure:   m.secure,
		HttpOnly: false,
	}
}

// Set stores the token and role. It replaces any existing session.
func (m *Manager) Set(c echo.Context, token, role string) {
	c.SetCookie(m.cookie(TokenCookie, token, int(MaxAge.Seconds())))
	c.SetCookie(m.cookie(RoleCookie, role, int(MaxAge.Seconds())))
}

// Clear removes both cookies. Calling it on an already-cleared session
// is a no-op.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.cookie(TokenCookie, "", -1))
	c.SetCookie(m.cookie(RoleCookie, "", -1))
}

// Token returns the stored bearer token, or "" when absent. No expiry
// check happens here; the cookie MaxAge and the route guard's own
// decode step enforce expiry.
func (m *Manager) Token(c echo.Context) string {
	return readCookie(c, TokenCookie)
}

// Role returns the stored role tag, or "" when absent.
func (m *Manager) Role(c echo.Context) string {
	return readCookie(c, RoleCookie)
}

func readCookie(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil || ck == nil {
		return ""
	}
	return ck.Value
}
