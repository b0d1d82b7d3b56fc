package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/pkg/utils"
)

// CredentialKind selects how a login is verified
type CredentialKind int

const (
	HospitalCredential CredentialKind = iota
	PatientCredential
)

func (k CredentialKind) Role() string {
	if k == HospitalCredential {
		return models.RoleHospital
	}
	return models.RolePatient
}

// Credentials is a login attempt. Identifier is the license number for
// hospitals and the email address for patients. Email is an optional second
// factor hospitals may send; when present it must match.
type Credentials struct {
	Kind       CredentialKind
	Identifier string
	Email      string
	Password   string
}

// Identity is a verified principal
type Identity struct {
	ID    uint   `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Verifier checks a secret against the stored principal
type Verifier interface {
	Verify(ctx context.Context, creds Credentials) (*Identity, error)
}

var errInvalidCredentials = apperr.Unauthenticated("invalid credentials")

type hospitalVerifier struct {
	repo *repository.HospitalRepository
}

func (v hospitalVerifier) Verify(ctx context.Context, creds Credentials) (*Identity, error) {
	hospital, err := v.repo.GetHospitalByLicense(ctx, creds.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("load hospital: %w", err)
	}
	if creds.Email != "" && !strings.EqualFold(creds.Email, hospital.Email) {
		return nil, errInvalidCredentials
	}
	if !utils.ComparePassword(hospital.PasswordHash, creds.Password) {
		return nil, errInvalidCredentials
	}
	return hospitalIdentity(hospital), nil
}

type patientVerifier struct {
	repo *repository.PatientRepository
}

func (v patientVerifier) Verify(ctx context.Context, creds Credentials) (*Identity, error) {
	patient, err := v.repo.FindPatientByEmail(ctx, strings.ToLower(creds.Identifier))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("load patient: %w", err)
	}
	if !utils.ComparePassword(patient.PasswordHash, creds.Password) {
		return nil, errInvalidCredentials
	}
	return patientIdentity(patient), nil
}

func hospitalIdentity(h *models.Hospital) *Identity {
	return &Identity{ID: h.ID, Role: models.RoleHospital, Name: h.Name, Email: h.Email}
}

func patientIdentity(p *models.Patient) *Identity {
	return &Identity{ID: p.ID, Role: models.RolePatient, Name: p.Name, Email: p.Email}
}
