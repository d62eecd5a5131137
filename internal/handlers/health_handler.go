package handlers

import (
	"context"
	"net/http"
	"time"

	"storefront-console/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *database.DB
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db Pinger
}

// NewHealthCheckHandler creates a health check handler. A nil db means the
// console runs without its audit database and only reports liveness.
func NewHealthCheckHandler(db Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	audit := "disabled"

	if h.db != nil {
		if err := h.db.HealthCheck(c.Request().Context()); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		audit = "enabled"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"audit":  audit,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
