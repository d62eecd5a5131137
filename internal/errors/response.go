package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the JSON envelope every console error is returned in
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates an error response for code, stamped with traceID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with one detail per field.
// Details are sorted by field name so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// WrapSystemError hides err behind a generic message.
// The internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides a database error behind a generic message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationInvalidFormat:
		return http.StatusBadRequest

	case ConsoleUnknownRegion, SystemNotFound:
		return http.StatusNotFound

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case DirectoryUnavailable:
		return http.StatusBadGateway

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
