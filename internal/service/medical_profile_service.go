package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"

	"gorm.io/datatypes"
)

type MedicalProfileService struct {
	profileRepo *repository.MedicalProfileRepository
	doctorRepo  *repository.DoctorRepository
	auditRepo   *repository.AuditRepository
}

func NewMedicalProfileService(
	profileRepo *repository.MedicalProfileRepository,
	doctorRepo *repository.DoctorRepository,
	auditRepo *repository.AuditRepository,
) *MedicalProfileService {
	return &MedicalProfileService{
		profileRepo: profileRepo,
		doctorRepo:  doctorRepo,
		auditRepo:   auditRepo,
	}
}

// MedicalProfileInput is the submitted health questionnaire
type MedicalProfileInput struct {
	BloodType    string
	Allergies    []string
	Medications  []string
	Conditions   []string
	Vaccinations []string
	LastCheckup  string
}

// SubmitProfile stores the session patient's profile. A patient has at most one.
func (s *MedicalProfileService) SubmitProfile(ctx context.Context, actor Actor, in MedicalProfileInput) (*models.MedicalProfile, error) {
	if err := requirePatient(actor); err != nil {
		return nil, err
	}

	lastCheckup, err := parseCheckupDate(in.LastCheckup)
	if err != nil {
		return nil, err
	}

	exists, err := s.profileRepo.ExistsForPatient(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check medical profile: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("medical profile already exists")
	}

	profile := &models.MedicalProfile{
		PatientID:       actor.ID,
		BloodType:       strings.TrimSpace(in.BloodType),
		Allergies:       stringList(in.Allergies),
		Medications:     stringList(in.Medications),
		Conditions:      stringList(in.Conditions),
		Vaccinations:    stringList(in.Vaccinations),
		LastCheckup:     lastCheckup,
		FavoriteDoctors: []models.Doctor{},
	}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create medical profile: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "medical_profile_submitted",
		fmt.Sprintf("Patient %d submitted a medical profile", actor.ID))

	return profile, nil
}

// ProfileExists reports whether the session patient has submitted a profile
func (s *MedicalProfileService) ProfileExists(ctx context.Context, actor Actor) (bool, error) {
	if err := requirePatient(actor); err != nil {
		return false, err
	}
	exists, err := s.profileRepo.ExistsForPatient(ctx, actor.ID)
	if err != nil {
		return false, fmt.Errorf("check medical profile: %w", err)
	}
	return exists, nil
}

// GetProfile returns the profile of patientID. Callers are limited to the
// owning patient and hospital sessions by the route's access middleware.
func (s *MedicalProfileService) GetProfile(ctx context.Context, patientID uint) (*models.MedicalProfile, error) {
	profile, err := s.profileRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Medical profile not found")
		}
		return nil, fmt.Errorf("load medical profile: %w", err)
	}
	if profile.FavoriteDoctors == nil {
		profile.FavoriteDoctors = []models.Doctor{}
	}
	return profile, nil
}

// AddFavoriteDoctor links doctorID to the session patient's profile
func (s *MedicalProfileService) AddFavoriteDoctor(ctx context.Context, actor Actor, doctorID uint) (*models.MedicalProfile, error) {
	profile, doctor, err := s.favoriteTargets(ctx, actor, doctorID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.AddFavorite(ctx, profile, doctor); err != nil {
		return nil, fmt.Errorf("add favorite doctor: %w", err)
	}
	return s.GetProfile(ctx, actor.ID)
}

// RemoveFavoriteDoctor unlinks doctorID from the session patient's profile
func (s *MedicalProfileService) RemoveFavoriteDoctor(ctx context.Context, actor Actor, doctorID uint) (*models.MedicalProfile, error) {
	profile, doctor, err := s.favoriteTargets(ctx, actor, doctorID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveFavorite(ctx, profile, doctor); err != nil {
		return nil, fmt.Errorf("remove favorite doctor: %w", err)
	}
	return s.GetProfile(ctx, actor.ID)
}

func (s *MedicalProfileService) favoriteTargets(ctx context.Context, actor Actor, doctorID uint) (*models.MedicalProfile, *models.Doctor, error) {
	if err := requirePatient(actor); err != nil {
		return nil, nil, err
	}

	profile, err := s.GetProfile(ctx, actor.ID)
	if err != nil {
		return nil, nil, err
	}

	doctor, err := s.doctorRepo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apperr.Reference("doctor not found")
		}
		return nil, nil, fmt.Errorf("load doctor %d: %w", doctorID, err)
	}
	return profile, doctor, nil
}

// parseCheckupDate accepts RFC 3339 timestamps and plain dates
func parseCheckupDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperr.Invalid("lastCheckup", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

func stringList(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
