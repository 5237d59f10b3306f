package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/gateway/internal/platform/session"
)

const loginPath = "/auth"

// Guard returns middleware that enforces the navigation rules on every
// request:
//
//   - /api/auth/* always passes, authenticated or not.
//   - /auth* and / are public; a visitor with a live token is sent to
//     their role's home page instead.
//   - /api/* (non-auth) passes through — the backend rejects bad
//     tokens on the forwarded call itself.
//   - /admin/*, /staff/* and /patient/* require a live token whose
//     role matches the prefix; anything else redirects to /auth.
//   - every other path requires a live token of any role.
//
// A malformed token is treated exactly like an expired one: silent
// redirect to /auth, never an error surfaced to the user.
func Guard(sessions *session.Manager, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			token := sessions.Token(c)

			if strings.HasPrefix(path, "/api/auth/") {
				return next(c)
			}

			if strings.HasPrefix(path, loginPath) || path == "/" {
				if token != "" {
					if claims, err := DecodeToken(token); err == nil && !claims.ExpiredAt(time.Now()) {
						if role, err := claims.Role(); err == nil {
							return c.Redirect(http.StatusFound, role.HomePath())
						}
					}
				}
				return next(c)
			}

			if strings.HasPrefix(path, "/api/") || path == "/api" {
				return next(c)
			}

			if token == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}

			claims, err := DecodeToken(token)
			if err != nil {
				logger.Debug().Err(err).Str("path", path).Msg("token decode failed")
				return c.Redirect(http.StatusFound, loginPath)
			}
			if claims.ExpiredAt(time.Now()) {
				return c.Redirect(http.StatusFound, loginPath)
			}

			if required, guarded := requiredRole(path); guarded {
				role, err := claims.Role()
				if err != nil || role != required {
					return c.Redirect(http.StatusFound, loginPath)
				}
			}

			return next(c)
		}
	}
}

// requiredRole maps a path prefix to the role it demands.
func requiredRole(path string) (Role, bool) {
	switch {
	case strings.HasPrefix(path, "/admin"):
		return RoleAdmin, true
	case strings.HasPrefix(path, "/staff"):
		return RoleStaff, true
	case strings.HasPrefix(path, "/patient"):
		return RolePatient, true
	default:
		return "", false
	}
}
