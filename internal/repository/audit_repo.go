package repository

import (
	"context"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry. actorID is nil for
// anonymous callers such as the community board and payment webhooks.
func (r *AuditRepository) CreateAuditLog(ctx context.Context, actorID *uint, actorRole, action, details string) error {
	log := &models.AuditLog{
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Details:   details,
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByAction returns entries for one action, newest first
func (r *AuditRepository) ListByAction(ctx context.Context, action string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).Where("action = ?", action).Order("id DESC").Find(&logs).Error
	return logs, err
}
