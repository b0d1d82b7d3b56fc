package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/pkg/utils"
)

type AuthService struct {
	hospitalRepo *repository.HospitalRepository
	patientRepo  *repository.PatientRepository
	tokenRepo    *repository.TokenRepository
	auditRepo    *repository.AuditRepository
	tokens       *utils.TokenManager
}

func NewAuthService(
	hospitalRepo *repository.HospitalRepository,
	patientRepo *repository.PatientRepository,
	tokenRepo *repository.TokenRepository,
	auditRepo *repository.AuditRepository,
	tokens *utils.TokenManager,
) *AuthService {
	return &AuthService{
		hospitalRepo: hospitalRepo,
		patientRepo:  patientRepo,
		tokenRepo:    tokenRepo,
		auditRepo:    auditRepo,
		tokens:       tokens,
	}
}

// Session is what a successful login or registration hands back
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"-"`
	Principal    Identity `json:"principal"`
}

// HospitalRegistration carries the validated sign-up form
type HospitalRegistration struct {
	Name          string
	Address       string
	ContactPerson string
	Phone         string
	Email         string
	LicenseNumber string
	Password      string
	Latitude      float64
	Longitude     float64
}

func (s *AuthService) verifier(kind CredentialKind) (Verifier, error) {
	switch kind {
	case HospitalCredential:
		return hospitalVerifier{repo: s.hospitalRepo}, nil
	case PatientCredential:
		return patientVerifier{repo: s.patientRepo}, nil
	default:
		return nil, fmt.Errorf("unknown credential kind %d", kind)
	}
}

// Login verifies credentials with the strategy for their kind and opens a session
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*Session, error) {
	v, err := s.verifier(creds.Kind)
	if err != nil {
		return nil, err
	}

	identity, err := v.Verify(ctx, creds)
	if err != nil {
		metrics.RecordAuthAttempt(creds.Kind.Role(), "login", "failure")
		return nil, err
	}

	session, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	metrics.RecordAuthAttempt(identity.Role, "login", "success")
	_ = s.auditRepo.CreateAuditLog(ctx, &identity.ID, identity.Role, identity.Role+"_login",
		fmt.Sprintf("%s %s logged in", identity.Role, identity.Email))

	return session, nil
}

// RegisterHospital creates a hospital account and logs it in
func (s *AuthService) RegisterHospital(ctx context.Context, reg HospitalRegistration) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	taken, err := s.hospitalRepo.EmailOrLicenseTaken(ctx, email, reg.LicenseNumber)
	if err != nil {
		return nil, fmt.Errorf("check hospital uniqueness: %w", err)
	}
	if taken {
		metrics.RecordAuthAttempt(models.RoleHospital, "register", "conflict")
		return nil, apperr.Conflict("a hospital with this email or license number already exists")
	}

	passwordHash, err := utils.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:          reg.Name,
		Address:       reg.Address,
		ContactPerson: reg.ContactPerson,
		Phone:         reg.Phone,
		Email:         email,
		LicenseNumber: reg.LicenseNumber,
		PasswordHash:  passwordHash,
		Latitude:      reg.Latitude,
		Longitude:     reg.Longitude,
	}
	if err := s.hospitalRepo.CreateHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	identity := hospitalIdentity(hospital)
	session, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	metrics.RecordAuthAttempt(models.RoleHospital, "register", "success")
	_ = s.auditRepo.CreateAuditLog(ctx, &hospital.ID, models.RoleHospital, "hospital_registration",
		fmt.Sprintf("Hospital %s registered with license %s", hospital.Name, hospital.LicenseNumber))

	return session, nil
}

// RegisterPatient creates a patient account and logs it in
func (s *AuthService) RegisterPatient(ctx context.Context, name, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.patientRepo.FindPatientByEmail(ctx, email); err == nil {
		metrics.RecordAuthAttempt(models.RolePatient, "register", "conflict")
		return nil, apperr.Conflict("a patient with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check patient uniqueness: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{Name: name, Email: email, PasswordHash: passwordHash}
	if err := s.patientRepo.CreatePatient(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	identity := patientIdentity(patient)
	session, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	metrics.RecordAuthAttempt(models.RolePatient, "register", "success")
	_ = s.auditRepo.CreateAuditLog(ctx, &patient.ID, models.RolePatient, "patient_registration",
		fmt.Sprintf("Patient %s registered", patient.Email))

	return session, nil
}

// RefreshAccessToken issues a new access token for a live refresh token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.tokenRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.Unauthenticated("invalid or revoked refresh token")
		}
		return "", fmt.Errorf("load refresh token: %w", err)
	}

	if time.Now().After(token.ExpiresAt) {
		return "", apperr.Unauthenticated("refresh token expired")
	}

	accessToken, err := s.tokens.GenerateAccessToken(token.PrincipalID, token.PrincipalRole)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Me resolves the session principal to its current profile
func (s *AuthService) Me(ctx context.Context, actor Actor) (*Identity, error) {
	switch actor.Role {
	case models.RoleHospital:
		hospital, err := s.hospitalRepo.GetHospitalByID(ctx, actor.ID)
		if err != nil {
			return nil, sessionLookupError(err)
		}
		return hospitalIdentity(hospital), nil
	case models.RolePatient:
		patient, err := s.patientRepo.FindPatientByID(ctx, actor.ID)
		if err != nil {
			return nil, sessionLookupError(err)
		}
		return patientIdentity(patient), nil
	default:
		return nil, apperr.Unauthenticated("unknown session role")
	}
}

func sessionLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.Unauthenticated("session principal no longer exists")
	}
	return err
}

func (s *AuthService) openSession(ctx context.Context, identity *Identity) (*Session, error) {
	accessToken, err := s.tokens.GenerateAccessToken(identity.ID, identity.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := utils.GenerateRefreshToken()
	record := &models.RefreshToken{
		PrincipalID:   identity.ID,
		PrincipalRole: identity.Role,
		TokenHash:     utils.HashRefreshToken(refreshToken),
		ExpiresAt:     time.Now().Add(s.tokens.RefreshTokenExpiry()),
	}
	if err := s.tokenRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    *identity,
	}, nil
}
