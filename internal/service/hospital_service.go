package service

import (
	"context"
	"errors"
	"fmt"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/internal/resource"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
	resourceRepo *repository.ResourceRepository
}

func NewHospitalService(
	hospitalRepo *repository.HospitalRepository,
	resourceRepo *repository.ResourceRepository,
) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		resourceRepo: resourceRepo,
	}
}

// HospitalOverview is a hospital profile with whichever resource records it
// has stored, keyed by kind
type HospitalOverview struct {
	models.Hospital
	Resources map[resource.Kind]models.ResourceRow `json:"resources"`
}

// GetAllHospitals lists every registered hospital
func (s *HospitalService) GetAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.hospitalRepo.GetAllHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return hospitals, nil
}

// GetHospitalOverview loads a hospital and its resource records
func (s *HospitalService) GetHospitalOverview(ctx context.Context, id uint) (*HospitalOverview, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("hospital not found")
		}
		return nil, fmt.Errorf("load hospital %d: %w", id, err)
	}

	overview := &HospitalOverview{
		Hospital:  *hospital,
		Resources: make(map[resource.Kind]models.ResourceRow),
	}
	for _, kind := range resource.Kinds {
		row := resource.SchemaFor(kind).NewRow(id)
		err := s.resourceRepo.Find(ctx, id, row)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s for hospital %d: %w", kind, id, err)
		}
		overview.Resources[kind] = row
	}
	return overview, nil
}
