// Package envelope defines the uniform response shape every gateway
// endpoint returns: {status, message, data}. The numeric status is a
// sentinel, not an HTTP code — StatusSuccess on success, StatusFailure
// otherwise — and the transport-level HTTP status is set separately.
package envelope

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// StatusSuccess is the sentinel the frontend checks on successful
	// responses. Kept bit-for-bit compatible with the deployed clients.
	StatusSuccess = 1073741824

	// StatusFailure marks every failed response.
	StatusFailure = 0
)

type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a 200 envelope wrapping data.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// Created writes a 201 envelope wrapping data.
func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// Unauthorized writes the fixed 401 envelope used whenever the backend
// rejects the forwarded bearer token.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Envelope{Status: StatusFailure, Message: "Unauthorized", Data: nil})
}

// Failure writes a 500 envelope with a resource-specific message. All
// non-401 upstream failures collapse here — including missing ids; the
// gateway deliberately does not surface 404s.
func Failure(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, Envelope{Status: StatusFailure, Message: message, Data: nil})
}

// Forward writes an envelope with the backend's own status code and
// message. Used by the login proxies, which surface backend failures
// verbatim instead of collapsing them to 500.
func Forward(c echo.Context, httpStatus int, env Envelope) error {
	return c.JSON(httpStatus, env)
}
