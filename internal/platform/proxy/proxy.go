// Package proxy carries the shared forwarding plumbing for the
// resource proxy endpoints: one outbound call with the caller's
// Authorization header, and the uniform failure mapping (401 →
// Unauthorized envelope, everything else → resource-specific 500).
package proxy

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/gateway/internal/platform/envelope"
	"github.com/hospital/gateway/internal/platform/upstream"
)

type Forwarder struct {
	API    *upstream.Client
	Logger zerolog.Logger
}

// Forward issues the upstream call for an inbound request, passing the
// caller's Authorization header through verbatim when present.
func (f *Forwarder) Forward(c echo.Context, method, path string, body interface{}) (*upstream.Payload, error) {
	auth := c.Request().Header.Get("Authorization")
	return f.API.Do(c.Request().Context(), method, path, auth, body)
}

// Fail converts an upstream error into the envelope the browser
// expects. Transport failures and backend business failures are
// indistinguishable here on purpose; both get the generic message.
func (f *Forwarder) Fail(c echo.Context, err error, message string) error {
	if upstream.IsUnauthorized(err) {
		return envelope.Unauthorized(c)
	}
	f.Logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("proxy call failed")
	return envelope.Failure(c, message)
}
