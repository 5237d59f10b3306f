package patient

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/gateway/internal/platform/envelope"
	"github.com/hospital/gateway/internal/platform/proxy"
	"github.com/hospital/gateway/internal/platform/upstream"
)

type Handler struct {
	proxy.Forwarder
}

func NewHandler(api *upstream.Client, logger zerolog.Logger) *Handler {
	return &Handler{Forwarder: proxy.Forwarder{API: api, Logger: logger}}
}

// RegisterRoutes mounts the patient proxy endpoints. The singular and
// plural prefixes both exist upstream and are kept as-is.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patient", h.List)
	api.POST("/patient", h.Create)
	api.GET("/patient/active", h.ListActive)
	api.GET("/patient/me", h.Me)
	api.GET("/patient/national-id/:nationalId", h.ByNationalID)
	api.PATCH("/patient/:id/deactivate", h.Deactivate)
	api.PATCH("/patient/:id/reactivate", h.Reactivate)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
	api.GET("/patients/blood-type/:bloodType", h.ByBloodType)
}

func (h *Handler) List(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patient", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve patients")
	}
	return envelope.OK(c, "Patients retrieved successfully", p.DataOrEmptyList())
}

// Create registers a patient. Unlike the other proxies, backend
// rejections (duplicate national id, weak password) surface with the
// backend's own status and message so the registration form can show
// them.
func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to register patient")
	}
	p, err := h.Forward(c, http.MethodPost, "/patient", req)
	if err != nil {
		if se, ok := upstream.AsStatusError(err); ok && se.Payload != nil {
			return envelope.Forward(c, se.Code, envelope.Envelope{
				Status:  envelope.StatusFailure,
				Message: se.Payload.Message,
			})
		}
		return h.Fail(c, err, "Failed to register patient")
	}
	return envelope.Created(c, "Patient registered successfully", p.Data)
}

func (h *Handler) ListActive(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patient/active", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve active patients")
	}
	return envelope.OK(c, "Active patients retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Me(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patient/me", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve patient profile")
	}
	return envelope.OK(c, "Patient profile retrieved successfully", p.Data)
}

func (h *Handler) ByNationalID(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patient/national-id/"+url.PathEscape(c.Param("nationalId")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve patient")
	}
	return envelope.OK(c, "Patient retrieved successfully", p.Data)
}

func (h *Handler) Deactivate(c echo.Context) error {
	p, err := h.Forward(c, http.MethodPatch, "/patient/"+url.PathEscape(c.Param("id"))+"/deactivate", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to deactivate patient")
	}
	return envelope.OK(c, "Patient deactivated successfully", p.Data)
}

func (h *Handler) Reactivate(c echo.Context) error {
	p, err := h.Forward(c, http.MethodPatch, "/patient/"+url.PathEscape(c.Param("id"))+"/reactivate", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to reactivate patient")
	}
	return envelope.OK(c, "Patient reactivated successfully", p.Data)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patients/"+url.PathEscape(c.Param("id")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve patient")
	}
	return envelope.OK(c, "Patient retrieved successfully", p.Data)
}

func (h *Handler) Update(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to update patient")
	}
	p, err := h.Forward(c, http.MethodPut, "/patients/"+url.PathEscape(c.Param("id")), req)
	if err != nil {
		return h.Fail(c, err, "Failed to update patient")
	}
	return envelope.OK(c, "Patient updated successfully", p.Data)
}

func (h *Handler) Delete(c echo.Context) error {
	if _, err := h.Forward(c, http.MethodDelete, "/patients/"+url.PathEscape(c.Param("id")), nil); err != nil {
		return h.Fail(c, err, "Failed to delete patient")
	}
	return envelope.OK(c, "Patient deleted successfully", nil)
}

func (h *Handler) ByBloodType(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/patients/blood-type/"+url.PathEscape(c.Param("bloodType")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve patients by blood type")
	}
	return envelope.OK(c, "Patients retrieved successfully", p.DataOrEmptyList())
}
