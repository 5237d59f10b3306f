package workload

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff/workloads", h.List)
	api.POST("/staff/workloads", h.Create)
	api.GET("/staff/workloads/date/:date", h.ByDate)
	api.GET("/staff/workloads/date-range", h.ByDateRange)
	api.GET("/staff/workloads/staff/:staffId", h.ByStaff)
	api.GET("/staff/workloads/staff/:staffId/date-range", h.ByStaffAndDateRange)
	api.GET("/staff/workloads/:id", h.Get)
	api.PUT("/staff/workloads/:id", h.Update)
	api.DELETE("/staff/workloads/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/workloads", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve workloads")
	}
	return envelope.OK(c, "Workloads retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to create workload")
	}
	p, err := h.Forward(c, http.MethodPost, "/staff/workloads", req)
	if err != nil {
		return h.Fail(c, err, "Failed to create workload")
	}
	return envelope.Created(c, "Workload created successfully", p.Data)
}

func (h *Handler) ByDate(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/workloads/date/"+url.PathEscape(c.Param("date")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve workloads by date")
	}
	return envelope.OK(c, "Workloads retrieved successfully", p.DataOrEmptyList())
}

// ByDateRange forwards the startDate/endDate query pair untouched.
func (h *Handler) ByDateRange(c echo.Context) error {
	q := url.Values{}
	q.Set("startDate", c.QueryParam("startDate"))
	q.Set("endDate", c.QueryParam("endDate"))
	p, err := h.Forward(c, http.MethodGet, "/staff/workloads/date-range?"+q.Encode(), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve workloads by date range")
	}
	return envelope.OK(c, "Workloads retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByStaff(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/workloads/staff/"+url.PathEscape(c.Param("staffId")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff workloads")
	}
	return envelope.OK(c, "Staff workloads retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByStaffAndDateRange(c echo.Context) error {
	q := url.Values{}
	q.Set("startDate", c.QueryParam("startDate"))
	q.Set("endDate", c.QueryParam("endDate"))
	path := "/staff/workloads/staff/" + url.PathEscape(c.Param("staffId")) + "/date-range?" + q.Encode()
	p, err := h.Forward(c, http.MethodGet, path, nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff workloads by date range")
	}
	return envelope.OK(c, "Staff workloads retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/workloads/"+url.PathEscape(c.Param("id")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve workload")
	}
	return envelope.OK(c, "Workload retrieved successfully", p.Data)
}

func (h *Handler) Update(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to update workload")
	}
	p, err := h.Forward(c, http.MethodPut, "/staff/workloads/"+url.PathEscape(c.Param("id")), req)
	if err != nil {
		return h.Fail(c, err, "Failed to update workload")
	}
	return envelope.OK(c, "Workload updated successfully", p.Data)
}

func (h *Handler) Delete(c echo.Context) error {
	if _, err := h.Forward(c, http.MethodDelete, "/staff/workloads/"+url.PathEscape(c.Param("id")), nil); err != nil {
		return h.Fail(c, err, "Failed to delete workload")
	}
	return envelope.OK(c, "Workload deleted successfully", nil)
}
