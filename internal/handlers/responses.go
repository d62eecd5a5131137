package handlers

import (
	"strings"

	"storefront-console/internal/errors"

	"github.com/labstack/echo/v4"
)

// Errors leave a handler through SendError (client and request errors) or
// SendDatabaseError (the audit store). Console actions themselves never
// fail at the HTTP level: their outcome is the render instruction in the body.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendDatabaseError hides an audit store failure behind a generic message
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapDatabaseError(err, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// wantsHTML reports whether the client asked for markup rather than JSON
func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
