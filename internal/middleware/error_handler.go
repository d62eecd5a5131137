package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront-console/internal/errors"
	"storefront-console/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler formats every unhandled error as an ErrorResponse,
// logs it and counts it in api_errors_total on reg.
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var (
			errorResponse  *errors.ErrorResponse
			httpStatus     int
			echoErr        *echo.HTTPError
			validationErrs validator.ValidationErrors
		)

		switch {
		case stderrors.As(err, &echoErr):
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stderrors.As(err, &validationErrs):
			errorResponse = errors.NewValidationError(validation.FieldErrors(validationErrs), traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return errors.DirectoryUnavailable
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
