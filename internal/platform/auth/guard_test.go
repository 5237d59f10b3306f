package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/gateway/internal/platform/session"
)

func makeToken(t *testing.T, scope string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"scope": scope,
		"exp":   exp.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runGuard(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Guard(session.NewManager(false), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "page")
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("expected redirect to %s, got %s", location, got)
	}
}

func expectPass(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through 200, got %d (Location=%s)", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuard_AdminPage(t *testing.T) {
	valid := time.Now().Add(time.Hour)
	expired := time.Now().Add(-time.Hour)

	t.Run("no token redirects to login", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/admin/staff", ""), "/auth")
	})
	t.Run("admin token passes", func(t *testing.T) {
		expectPass(t, runGuard(t, "/admin/staff", makeToken(t, "ADMIN", valid)))
	})
	t.Run("staff token redirects", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/admin/staff", makeToken(t, "STAFF", valid)), "/auth")
	})
	t.Run("expired admin token redirects", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/admin/staff", makeToken(t, "ADMIN", expired)), "/auth")
	})
	t.Run("malformed token redirects", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/admin/staff", "not.a.jwt"), "/auth")
	})
}

func TestGuard_RolePrefixes(t *testing.T) {
	valid := time.Now().Add(time.Hour)

	expectPass(t, runGuard(t, "/staff/me", makeToken(t, "STAFF", valid)))
	expectRedirect(t, runGuard(t, "/staff/me", makeToken(t, "PATIENT", valid)), "/auth")

	expectPass(t, runGuard(t, "/patient/me", makeToken(t, "PATIENT", valid)))
	expectRedirect(t, runGuard(t, "/patient/me", makeToken(t, "ADMIN", valid)), "/auth")
}

func TestGuard_AuthAPIAlwaysPasses(t *testing.T) {
	expectPass(t, runGuard(t, "/api/auth/admin/login", ""))
	expectPass(t, runGuard(t, "/api/auth/staff/login", "garbage"))
	expectPass(t, runGuard(t, "/api/auth/logout", makeToken(t, "ADMIN", time.Now().Add(-time.Hour))))
}

func TestGuard_PublicPages(t *testing.T) {
	valid := time.Now().Add(time.Hour)

	t.Run("anonymous visitor passes", func(t *testing.T) {
		expectPass(t, runGuard(t, "/auth", ""))
		expectPass(t, runGuard(t, "/", ""))
	})
	t.Run("logged-in visitor is sent home", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/auth", makeToken(t, "ADMIN", valid)), "/admin/staff")
		expectRedirect(t, runGuard(t, "/", makeToken(t, "STAFF", valid)), "/staff/me")
		expectRedirect(t, runGuard(t, "/auth", makeToken(t, "PATIENT", valid)), "/patient/me")
	})
	t.Run("expired token falls through to login page", func(t *testing.T) {
		expectPass(t, runGuard(t, "/auth", makeToken(t, "ADMIN", time.Now().Add(-time.Minute))))
	})
	t.Run("unknown role falls through", func(t *testing.T) {
		expectPass(t, runGuard(t, "/auth", makeToken(t, "SUPERUSER", valid)))
	})
}

func TestGuard_ProxyEndpointsPassThrough(t *testing.T) {
	// Non-auth /api paths are not the guard's business; the backend
	// rejects bad tokens on the forwarded call.
	expectPass(t, runGuard(t, "/api/staff", ""))
	expectPass(t, runGuard(t, "/api/patient", makeToken(t, "ADMIN", time.Now().Add(time.Hour))))
}

func TestGuard_UnlistedPagesNeedAnyLiveToken(t *testing.T) {
	valid := time.Now().Add(time.Hour)

	t.Run("no token redirects to login", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/dashboard", ""), "/auth")
	})
	t.Run("any live role passes", func(t *testing.T) {
		expectPass(t, runGuard(t, "/dashboard", makeToken(t, "ADMIN", valid)))
		expectPass(t, runGuard(t, "/dashboard", makeToken(t, "PATIENT", valid)))
	})
	t.Run("expired token redirects", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/dashboard", makeToken(t, "STAFF", time.Now().Add(-time.Minute))), "/auth")
	})
	t.Run("malformed token redirects", func(t *testing.T) {
		expectRedirect(t, runGuard(t, "/dashboard", "not.a.jwt"), "/auth")
	})
}

func TestParseRole(t *testing.T) {
	for _, tag := range []string{"ADMIN", "STAFF", "PATIENT"} {
		if _, err := ParseRole(tag); err != nil {
			t.Errorf("expected %s to parse: %v", tag, err)
		}
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("role tags are case-sensitive; expected error")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("expected error for empty role")
	}
}

func TestHomePath(t *testing.T) {
	cases := map[Role]string{
		RoleAdmin:   "/admin/staff",
		RoleStaff:   "/staff/me",
		RolePatient: "/patient/me",
	}
	for role, want := range cases {
		if got := role.HomePath(); got != want {
			t.Errorf("%s: expected %s, got %s", role, want, got)
		}
	}
}

func TestClaims_NoExpIsNotExpired(t *testing.T) {
	claims := jwt.MapClaims{"sub": "u", "scope": "ADMIN"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	decoded, err := DecodeToken(tok)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ExpiredAt(time.Now()) {
		t.Error("token without exp must not count as expired")
	}
}
