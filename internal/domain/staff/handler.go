package staff

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff", h.List)
	api.POST("/staff", h.Create)
	api.GET("/staff/active", h.ListActive)
	api.GET("/staff/me", h.Me)
	api.GET("/staff/departments", h.Departments)
	api.GET("/staff/specializations", h.Specializations)
	api.GET("/staff/department/:department", h.ByDepartment)
	api.GET("/staff/specialization/:specialization", h.BySpecialization)
	api.GET("/staff/type/:staffType", h.ByType)
	api.GET("/staff/:id", h.Get)
	api.PUT("/staff/:id", h.Update)
	api.DELETE("/staff/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff")
	}
	return envelope.OK(c, "Staff retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to create staff")
	}
	p, err := h.Forward(c, http.MethodPost, "/staff", req)
	if err != nil {
		return h.Fail(c, err, "Failed to create staff")
	}
	return envelope.Created(c, "Staff created successfully", p.Data)
}

func (h *Handler) ListActive(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/active", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve active staff")
	}
	return envelope.OK(c, "Active staff retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Me(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/me", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff profile")
	}
	return envelope.OK(c, "Staff profile retrieved successfully", p.Data)
}

// Departments serves the static department roster.
func (h *Handler) Departments(c echo.Context) error {
	return envelope.OK(c, "Departments retrieved successfully", Departments)
}

// Specializations serves the static specialization roster.
func (h *Handler) Specializations(c echo.Context) error {
	return envelope.OK(c, "Specializations retrieved successfully", Specializations)
}

// ByDepartment filters the fixture roster; this endpoint has never
// been proxied because the backend lacks a matching query.
func (h *Handler) ByDepartment(c echo.Context) error {
	department := c.Param("department")
	filtered := []Staff{}
	for _, s := range departmentRoster {
		if strings.EqualFold(s.Department, department) {
			filtered = append(filtered, s)
		}
	}
	return envelope.OK(c, fmt.Sprintf("Staff in department %s retrieved successfully", department), filtered)
}

func (h *Handler) BySpecialization(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/specialization/"+url.PathEscape(c.Param("specialization")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff by specialization")
	}
	return envelope.OK(c, "Staff retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByType(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/type/"+url.PathEscape(c.Param("staffType")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff by type")
	}
	return envelope.OK(c, "Staff retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/"+url.PathEscape(c.Param("id")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff")
	}
	return envelope.OK(c, "Staff retrieved successfully", p.Data)
}

func (h *Handler) Update(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to update staff")
	}
	p, err := h.Forward(c, http.MethodPut, "/staff/"+url.PathEscape(c.Param("id")), req)
	if err != nil {
		return h.Fail(c, err, "Failed to update staff")
	}
	return envelope.OK(c, "Staff updated successfully", p.Data)
}

func (h *Handler) Delete(c echo.Context) error {
	if _, err := h.Forward(c, http.MethodDelete, "/staff/"+url.PathEscape(c.Param("id")), nil); err != nil {
		return h.Fail(c, err, "Failed to delete staff")
	}
	return envelope.OK(c, "Staff deleted successfully", nil)
}
