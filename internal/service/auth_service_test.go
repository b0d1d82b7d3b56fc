package service

import (
	"context"
	"testing"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(r *testRepos) *AuthService {
	return NewAuthService(r.hospitals, r.patients, r.tokens, r.audit, newTestTokenManager())
}

func sampleRegistration() HospitalRegistration {
	return HospitalRegistration{
		Name:          "City Care",
		Address:       "221B Baker Street, Mumbai",
		ContactPerson: "Dr. Mehta",
		Phone:         "9123456780",
		Email:         "Admin@CityCare.example",
		LicenseNumber: "MH-77821",
		Password:      "secret123",
		Latitude:      19.07,
		Longitude:     72.87,
	}
}

func TestAuthService_HospitalRegisterAndLogin(t *testing.T) {
	r := newTestRepos(t)
	svc := newAuthService(r)
	ctx := context.Background()

	session, err := svc.RegisterHospital(ctx, sampleRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, models.RoleHospital, session.Principal.Role)
	assert.Equal(t, "admin@citycare.example", session.Principal.Email)

	_, err = svc.RegisterHospital(ctx, sampleRegistration())
	assert.ErrorIs(t, err, apperr.ErrConflict)

	login, err := svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "MH-77821", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, session.Principal.ID, login.Principal.ID)

	_, err = svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "MH-77821", Email: "admin@citycare.example", Password: "secret123"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "MH-77821", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "MH-77821", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "NOPE", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthService_PatientRegisterAndLogin(t *testing.T) {
	r := newTestRepos(t)
	svc := newAuthService(r)
	ctx := context.Background()

	session, err := svc.RegisterPatient(ctx, "Asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, session.Principal.Role)

	_, err = svc.RegisterPatient(ctx, "Asha Again", "ASHA@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	login, err := svc.Login(ctx, Credentials{Kind: PatientCredential, Identifier: "Asha@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, session.Principal.ID, login.Principal.ID)

	// A patient's email is not a hospital license.
	_, err = svc.Login(ctx, Credentials{Kind: HospitalCredential, Identifier: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	r := newTestRepos(t)
	testutil.SeedPatient(t, r.db, "p@example.com")
	svc := newAuthService(r)
	ctx := context.Background()

	session, err := svc.Login(ctx, Credentials{Kind: PatientCredential, Identifier: "p@example.com", Password: "secret123"})
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(ctx, session.RefreshToken)
	require.NoError(t, err)
	claims, err := newTestTokenManager().ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, claims.Role)

	require.NoError(t, svc.Logout(ctx, session.RefreshToken))
	_, err = svc.RefreshAccessToken(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.RefreshAccessToken(ctx, "never-issued")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthService_Me(t *testing.T) {
	r := newTestRepos(t)
	h := testutil.SeedHospital(t, r.db, 4)
	svc := newAuthService(r)
	ctx := context.Background()

	me, err := svc.Me(ctx, hospitalActor(4))
	require.NoError(t, err)
	assert.Equal(t, h.Name, me.Name)

	_, err = svc.Me(ctx, patientActor(99))
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthService_VerifierSelection(t *testing.T) {
	svc := newAuthService(newTestRepos(t))

	v, err := svc.verifier(HospitalCredential)
	require.NoError(t, err)
	assert.IsType(t, hospitalVerifier{}, v)

	v, err = svc.verifier(PatientCredential)
	require.NoError(t, err)
	assert.IsType(t, patientVerifier{}, v)

	_, err = svc.verifier(CredentialKind(9))
	assert.Error(t, err)
}
