package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"
)

type DoctorService struct {
	doctorRepo   *repository.DoctorRepository
	hospitalRepo *repository.HospitalRepository
	auditRepo    *repository.AuditRepository
}

func NewDoctorService(
	doctorRepo *repository.DoctorRepository,
	hospitalRepo *repository.HospitalRepository,
	auditRepo *repository.AuditRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// DoctorInput is a create request; Shift falls back to models.DefaultShift
type DoctorInput struct {
	Name           string
	Specialization string
	Shift          string
}

// DoctorPatch is an update request; nil fields are left unchanged
type DoctorPatch struct {
	ID             uint
	Name           *string
	Specialization *string
	Shift          *string
}

// ListDoctors returns the doctors of a hospital, empty when it has none
func (s *DoctorService) ListDoctors(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	doctors, err := s.doctorRepo.GetDoctorsByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list doctors for hospital %d: %w", hospitalID, err)
	}
	return doctors, nil
}

// CreateDoctor adds a doctor to hospitalID. An unknown hospital is a bad
// reference rather than a missing resource.
func (s *DoctorService) CreateDoctor(ctx context.Context, actor Actor, hospitalID uint, in DoctorInput) (*models.Doctor, error) {
	exists, err := s.hospitalRepo.Exists(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("check hospital %d: %w", hospitalID, err)
	}
	if !exists {
		return nil, apperr.Reference("Hospital not found")
	}
	if err := requireHospital(actor, hospitalID); err != nil {
		return nil, err
	}

	shift := strings.TrimSpace(in.Shift)
	if shift == "" {
		shift = models.DefaultShift
	}

	doctor := &models.Doctor{
		HospitalID:     hospitalID,
		Name:           in.Name,
		Specialization: in.Specialization,
		Shift:          shift,
	}
	if err := s.doctorRepo.CreateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "doctor_created",
		fmt.Sprintf("Doctor %s (ID: %d) added to hospital %d", doctor.Name, doctor.ID, hospitalID))

	return doctor, nil
}

// UpdateDoctor applies patch to a doctor of hospitalID
func (s *DoctorService) UpdateDoctor(ctx context.Context, actor Actor, hospitalID uint, patch DoctorPatch) (*models.Doctor, error) {
	if err := requireHospital(actor, hospitalID); err != nil {
		return nil, err
	}

	doctor, err := s.findHospitalDoctor(ctx, hospitalID, patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		doctor.Name = *patch.Name
	}
	if patch.Specialization != nil {
		doctor.Specialization = *patch.Specialization
	}
	if patch.Shift != nil {
		doctor.Shift = *patch.Shift
		if strings.TrimSpace(doctor.Shift) == "" {
			doctor.Shift = models.DefaultShift
		}
	}

	if err := s.doctorRepo.UpdateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "doctor_updated",
		fmt.Sprintf("Doctor %d of hospital %d updated", doctor.ID, hospitalID))

	return doctor, nil
}

// DeleteDoctor removes a doctor of hospitalID
func (s *DoctorService) DeleteDoctor(ctx context.Context, actor Actor, hospitalID, doctorID uint) error {
	if err := requireHospital(actor, hospitalID); err != nil {
		return err
	}

	doctor, err := s.findHospitalDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		return err
	}

	if err := s.doctorRepo.DeleteDoctor(ctx, doctor); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "doctor_deleted",
		fmt.Sprintf("Doctor %s (ID: %d) removed from hospital %d", doctor.Name, doctor.ID, hospitalID))

	return nil
}

func (s *DoctorService) findHospitalDoctor(ctx context.Context, hospitalID, doctorID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetHospitalDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, fmt.Errorf("load doctor %d: %w", doctorID, err)
	}
	return doctor, nil
}
