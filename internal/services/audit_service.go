package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront-console/internal/models"
	"storefront-console/internal/repositories"
)

var ErrInvalidAuditAction = errors.New("invalid audit action")

// AuditEntry is one console action to record
type AuditEntry struct {
	Action     string
	Resource   string
	ResourceID string
	Outcome    string
	Metadata   models.JSONBMap
}

var validAuditActions = map[string]bool{
	models.AuditActionCustomerSearch:       true,
	models.AuditActionCustomerCreated:      true,
	models.AuditActionCustomerCreateFailed: true,
	models.AuditActionProductAdded:         true,
	models.AuditActionPurchaseMade:         true,
	models.AuditActionListCustomers:        true,
	models.AuditActionListProducts:         true,
	models.AuditActionListPurchases:        true,
	models.AuditActionTotalViewed:          true,
}

// ValidateAuditAction checks action against the known console actions
func ValidateAuditAction(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("%w: %s", ErrInvalidAuditAction, action)
	}
	return nil
}

// AuditService persists console actions through the audit log repository
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// Record stores entry stamped with the request metadata in ctx.
// Failures are logged and otherwise ignored.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	if err := ValidateAuditAction(entry.Action); err != nil {
		s.logger.WarnContext(ctx, "audit entry rejected", "error", err)
		return
	}

	meta := RequestMetaFrom(ctx)
	log := &models.AuditLog{
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Outcome:    entry.Outcome,
		TraceID:    meta.TraceID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Metadata:   entry.Metadata,
	}

	if err := s.repo.Create(log); err != nil {
		s.logger.ErrorContext(ctx, "failed to record audit entry",
			"action", entry.Action,
			"request_id", meta.TraceID,
			"error", err,
		)
	}
}

// List returns recorded entries, newest first. An empty action lists all.
func (s *AuditService) List(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if action != "" {
		if err := ValidateAuditAction(action); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(action, offset, limit)
}

// DisabledAuditService is used when the audit trail is switched off
type DisabledAuditService struct{}

func NewDisabledAuditService() AuditServiceInterface {
	return DisabledAuditService{}
}

func (DisabledAuditService) Record(context.Context, AuditEntry) {}

func (DisabledAuditService) List(string, int, int) ([]*models.AuditLog, int64, error) {
	return []*models.AuditLog{}, 0, nil
}
