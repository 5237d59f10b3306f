package schedule

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
	api.GET("/staff/schedules", h.List)
	api.POST("/staff/schedules", h.Create)
	api.GET("/staff/schedules/active", h.ListActive)
	api.GET("/staff/schedules/date-range", h.ByDateRange)
	api.GET("/staff/schedules/department/:department", h.ByDepartment)
	api.GET("/staff/schedules/shift-type/:shiftType", h.ByShiftType)
	api.GET("/staff/schedules/staff/:staffId", h.ByStaff)
	api.GET("/staff/schedules/staff/:staffId/date-range", h.ByStaffAndDateRange)
	api.GET("/staff/schedules/:id", h.Get)
	api.PUT("/staff/schedules/:id", h.Update)
	api.DELETE("/staff/schedules/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve schedules")
	}
	return envelope.OK(c, "Schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to create schedule")
	}
	p, err := h.Forward(c, http.MethodPost, "/staff/schedules", req)
	if err != nil {
		return h.Fail(c, err, "Failed to create schedule")
	}
	return envelope.Created(c, "Schedule created successfully", p.Data)
}

func (h *Handler) ListActive(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/active", nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve active schedules")
	}
	return envelope.OK(c, "Active schedules retrieved successfully", p.DataOrEmptyList())
}

// ByDateRange forwards the startTime/endTime query pair untouched.
func (h *Handler) ByDateRange(c echo.Context) error {
	q := url.Values{}
	q.Set("startTime", c.QueryParam("startTime"))
	q.Set("endTime", c.QueryParam("endTime"))
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/date-range?"+q.Encode(), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve schedules by date range")
	}
	return envelope.OK(c, "Schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByDepartment(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/department/"+url.PathEscape(c.Param("department")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve schedules by department")
	}
	return envelope.OK(c, "Schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByShiftType(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/shift-type/"+url.PathEscape(c.Param("shiftType")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve schedules by shift type")
	}
	return envelope.OK(c, "Schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByStaff(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/staff/"+url.PathEscape(c.Param("staffId")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff schedules")
	}
	return envelope.OK(c, "Staff schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) ByStaffAndDateRange(c echo.Context) error {
	q := url.Values{}
	q.Set("startTime", c.QueryParam("startTime"))
	q.Set("endTime", c.QueryParam("endTime"))
	path := "/staff/schedules/staff/" + url.PathEscape(c.Param("staffId")) + "/date-range?" + q.Encode()
	p, err := h.Forward(c, http.MethodGet, path, nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve staff schedules by date range")
	}
	return envelope.OK(c, "Staff schedules retrieved successfully", p.DataOrEmptyList())
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.Forward(c, http.MethodGet, "/staff/schedules/"+url.PathEscape(c.Param("id")), nil)
	if err != nil {
		return h.Fail(c, err, "Failed to retrieve schedule")
	}
	return envelope.OK(c, "Schedule retrieved successfully", p.Data)
}

func (h *Handler) Update(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return envelope.Failure(c, "Failed to update schedule")
	}
	p, err := h.Forward(c, http.MethodPut, "/staff/schedules/"+url.PathEscape(c.Param("id")), req)
	if err != nil {
		return h.Fail(c, err, "Failed to update schedule")
	}
	return envelope.OK(c, "Schedule updated successfully", p.Data)
}

func (h *Handler) Delete(c echo.Context) error {
	if _, err := h.Forward(c, http.MethodDelete, "/staff/schedules/"+url.PathEscape(c.Param("id")), nil); err != nil {
		return h.Fail(c, err, "Failed to delete schedule")
	}
	return envelope.OK(c, "Schedule deleted successfully", nil)
}
