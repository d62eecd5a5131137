package repositories

import (
	"errors"
	"fmt"
	"time"

	"storefront-console/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

// ErrAuditLogNotFound is returned by GetByID when no entry has the given ID
var ErrAuditLogNotFound = errors.New("audit log not found")

// AuditLogRepository handles database operations for console audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) GetByID(id uuid.UUID) (*models.AuditLog, error) {
	log := &models.AuditLog{}
	if err := r.db.Where("id = ?", id).First(log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	return log, nil
}

// List returns the newest entries first. An empty action matches every action.
func (r *AuditLogRepository) List(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return logs, total, nil
}

// DeleteOlderThan removes entries created more than duration ago
func (r *AuditLogRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-duration)

	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
