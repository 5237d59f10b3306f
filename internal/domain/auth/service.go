package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	platform "github.com/hospital/gateway/internal/platform/auth"
	"github.com/hospital/gateway/internal/platform/session"
	"github.com/hospital/gateway/internal/platform/upstream"
)

// Credentials is the login payload the three role forms submit.
type Credentials struct {
	Subject  string `json:"subject"`
	Password string `json:"password"`
}

// Service performs the login flow shared by the admin, staff, and
// patient forms: forward the credentials to the role's backend
// endpoint and, when the backend reports success, persist the issued
// token and role in the session cookies.
type Service struct {
	api      *upstream.Client
	sessions *session.Manager
}

func NewService(api *upstream.Client, sessions *session.Manager) *Service {
	return &Service{api: api, sessions: sessions}
}

// Login submits creds to the role's login endpoint. The backend signals
// success with an envelope status of 200 and the JWT in the message
// field; anything else leaves the session untouched. The payload is
// returned either way so the caller can surface it verbatim.
func (s *Service) Login(c echo.Context, role platform.Role, creds Credentials) (*upstream.Payload, bool, error) {
	p, err := s.api.Post(c.Request().Context(), role.LoginPath(), "", creds)
	if err != nil {
		return nil, false, err
	}
	if p.Status == http.StatusOK && p.Message != "" {
		s.sessions.Set(c, p.Message, string(role))
		return p, true, nil
	}
	return p, false, nil
}

// Logout clears the session cookies.
func (s *Service) Logout(c echo.Context) {
	s.sessions.Clear(c)
}
