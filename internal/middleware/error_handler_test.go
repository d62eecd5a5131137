package middleware

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-console/internal/errors"
	"storefront-console/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.newContext()

	s.handler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.Contains(rec.Body.String(), "Resource not found")
	s.Contains(rec.Body.String(), "SYSTEM_005")
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	c, rec := s.newContext()

	s.handler(stderrors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "generic error")
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	c, rec := s.newContext()

	err := validation.GetValidator().Struct(struct {
		Limit int `json:"limit" validate:"min=1"`
	}{Limit: 0})
	s.Require().Error(err)

	s.handler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Equal([]string{"limit: must be at least 1"}, resp.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.handler(stderrors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse() {
	c, rec := s.newContext()
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(stderrors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	for i := 0; i < 2; i++ {
		c, _ := s.newContext()
		s.handler(echo.NewHTTPError(http.StatusTooManyRequests), c)
	}

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	s.Require().Len(families, 1)
	s.Equal("api_errors_total", families[0].GetName())
	s.Equal(float64(2), families[0].GetMetric()[0].GetCounter().GetValue())
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusNotFound, "SYSTEM_005"},
		{http.StatusTooManyRequests, "SYSTEM_004"},
		{http.StatusBadGateway, "DIRECTORY_001"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Equal(tc.expectedCode, string(mapHTTPStatusToErrorCode(tc.status)))
		})
	}
}
