package handlers

import (
	stderrors "errors"
	"net/http"

	"storefront-console/internal/dto"
	"storefront-console/internal/errors"
	"storefront-console/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultAuditLimit = 50

// AuditHandler exposes the console audit trail
type AuditHandler struct {
	audit services.AuditServiceInterface
}

func NewAuditHandler(audit services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ListAuditLogs returns recent audit entries, newest first, optionally
// narrowed to one action.
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	var query dto.AuditQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	if query.Limit == 0 {
		query.Limit = defaultAuditLimit
	}

	entries, total, err := h.audit.List(query.Action, query.Offset, query.Limit)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidAuditAction) {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("action: "+query.Action))
		}
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuditLogListResponse{
		Entries: entries,
		Total:   total,
		Limit:   query.Limit,
		Offset:  query.Offset,
	})
}
