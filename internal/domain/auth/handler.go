package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	platform "github.com/hospital/gateway/internal/platform/auth"
	"github.com/hospital/gateway/internal/platform/envelope"
	"github.com/hospital/gateway/internal/platform/session"
	"github.com/hospital/gateway/internal/platform/upstream"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(api *upstream.Client, sessions *session.Manager, logger zerolog.Logger) *Handler {
	return &Handler{service: NewService(api, sessions), logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/admin/login", h.login(platform.RoleAdmin))
	api.POST("/auth/staff/login", h.login(platform.RoleStaff))
	api.POST("/auth/patient/login", h.login(platform.RolePatient))
	api.POST("/auth/logout", h.Logout)
}

// login builds the handler for one role's login form. Unlike the
// resource proxies, backend rejections pass through with their own
// status and envelope so the form can show the real reason.
func (h *Handler) login(role platform.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var creds Credentials
		if err := c.Bind(&creds); err != nil {
			return envelope.Forward(c, http.StatusBadRequest, envelope.Envelope{
				Status:  envelope.StatusFailure,
				Message: "Login failed",
			})
		}

		p, ok, err := h.service.Login(c, role, creds)
		if err != nil {
			if se, isStatus := upstream.AsStatusError(err); isStatus {
				env := envelope.Envelope{Status: envelope.StatusFailure, Message: "Login failed"}
				if se.Payload != nil {
					env.Status = se.Payload.Status
					env.Message = se.Payload.Message
				}
				return envelope.Forward(c, se.Code, env)
			}
			h.logger.Error().Err(err).Str("role", string(role)).Msg("login request failed")
			return envelope.Failure(c, "An unexpected error occurred")
		}

		if !ok {
			h.logger.Warn().Str("role", string(role)).Msg("login rejected by backend")
		}
		return envelope.Forward(c, http.StatusOK, envelope.Envelope{
			Status:  p.Status,
			Message: p.Message,
			Data:    p.Data,
		})
	}
}

// Logout clears the session cookies. It never fails: logging out of an
// expired session is still a logout.
func (h *Handler) Logout(c echo.Context) error {
	h.service.Logout(c)
	return envelope.OK(c, "Logged out successfully", nil)
}
