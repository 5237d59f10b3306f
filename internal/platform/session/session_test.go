package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	res := rec.Result()
	for _, ck := range res.Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestSet_CookiePolicy(t *testing.T) {
	m := NewManager(true)
	c, rec := newContext()

	m.Set(c, "jwt-token", "ADMIN")

	cks := setCookies(rec)
	tok, ok := cks[TokenCookie]
	if !ok {
		t.Fatal("auth_token cookie not set")
	}
	if tok.Value != "jwt-token" {
		t.Errorf("unexpected token value %q", tok.Value)
	}
	if tok.MaxAge != int(MaxAge.Seconds()) {
		t.Errorf("expected max age %d, got %d", int(MaxAge.Seconds()), tok.MaxAge)
	}
	if tok.SameSite != http.SameSiteStrictMode {
		t.Error("expected SameSite=Strict")
	}
	if !tok.Secure {
		t.Error("expected Secure flag")
	}
	if role, ok := cks[RoleCookie]; !ok || role.Value != "ADMIN" {
		t.Errorf("expected role cookie ADMIN, got %+v", role)
	}
}

func TestSet_DevManagerNotSecure(t *testing.T) {
	m := NewManager(false)
	c, rec := newContext()
	m.Set(c, "t", "STAFF")
	if setCookies(rec)[TokenCookie].Secure {
		t.Error("dev manager must not set Secure")
	}
}

func TestClear_Idempotent(t *testing.T) {
	m := NewManager(true)

	for i := 0; i < 2; i++ {
		c, rec := newContext()
		m.Clear(c)
		cks := setCookies(rec)
		for _, name := range []string{TokenCookie, RoleCookie} {
			ck, ok := cks[name]
			if !ok {
				t.Fatalf("call %d: expected expiring cookie for %s", i+1, name)
			}
			if ck.MaxAge >= 0 || ck.Value != "" {
				t.Errorf("call %d: cookie %s not cleared: %+v", i+1, name, ck)
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	m := NewManager(true)

	c, _ := newContext(
		&http.Cookie{Name: TokenCookie, Value: "tok"},
		&http.Cookie{Name: RoleCookie, Value: "PATIENT"},
	)
	if got := m.Token(c); got != "tok" {
		t.Errorf("expected token, got %q", got)
	}
	if got := m.Role(c); got != "PATIENT" {
		t.Errorf("expected role, got %q", got)
	}

	empty, _ := newContext()
	if got := m.Token(empty); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
	if got := m.Role(empty); got != "" {
		t.Errorf("expected empty role, got %q", got)
	}
}
