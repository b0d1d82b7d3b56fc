package service

import (
	"context"
	"errors"
	"fmt"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/internal/resource"
)

// ResourceService reads and reconciles the four per-hospital resource kinds.
// Every kind goes through the same normalize, existence check and upsert path.
type ResourceService struct {
	hospitalRepo *repository.HospitalRepository
	resourceRepo *repository.ResourceRepository
	auditRepo    *repository.AuditRepository
}

func NewResourceService(
	hospitalRepo *repository.HospitalRepository,
	resourceRepo *repository.ResourceRepository,
	auditRepo *repository.AuditRepository,
) *ResourceService {
	return &ResourceService{
		hospitalRepo: hospitalRepo,
		resourceRepo: resourceRepo,
		auditRepo:    auditRepo,
	}
}

// Read returns the stored record for hospitalID and kind
func (s *ResourceService) Read(ctx context.Context, hospitalID uint, kind resource.Kind) (models.ResourceRow, error) {
	row := resource.SchemaFor(kind).NewRow(hospitalID)
	if err := s.resourceRepo.Find(ctx, hospitalID, row); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("%s information not found", kind))
		}
		return nil, fmt.Errorf("read %s for hospital %d: %w", kind, hospitalID, err)
	}
	return row, nil
}

// Upsert normalizes body, rejects it whole on the first bad field, then
// replaces the stored record. Only the hospital's own session may write.
// The returned row is what the store now holds.
func (s *ResourceService) Upsert(ctx context.Context, actor Actor, hospitalID uint, kind resource.Kind, body map[string]any) (models.ResourceRow, error) {
	schema := resource.SchemaFor(kind)

	row, err := schema.Normalize(hospitalID, body)
	if err != nil {
		metrics.RecordResourceUpsert(string(kind), "invalid")
		return nil, err
	}

	exists, err := s.hospitalRepo.Exists(ctx, hospitalID)
	if err != nil {
		metrics.RecordResourceUpsert(string(kind), "error")
		return nil, fmt.Errorf("check hospital %d: %w", hospitalID, err)
	}
	if !exists {
		metrics.RecordResourceUpsert(string(kind), "unknown_hospital")
		return nil, apperr.NotFound("hospital not found")
	}

	if err := requireHospital(actor, hospitalID); err != nil {
		metrics.RecordResourceUpsert(string(kind), "forbidden")
		return nil, err
	}

	stored := schema.NewRow(hospitalID)
	if err := s.resourceRepo.Upsert(ctx, row, stored, hospitalID, schema.Columns()); err != nil {
		metrics.RecordResourceUpsert(string(kind), "error")
		return nil, fmt.Errorf("upsert %s for hospital %d: %w", kind, hospitalID, err)
	}

	metrics.RecordResourceUpsert(string(kind), "ok")
	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "resource_upsert",
		fmt.Sprintf("Updated %s for hospital %d", kind, hospitalID))

	return stored, nil
}
