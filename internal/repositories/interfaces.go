package repositories

import (
	"time"

	"storefront-console/internal/models"

	"github.com/google/uuid"
)

// AuditLogRepositoryInterface defines the contract for console audit log storage
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	List(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
