package service

import (
	"context"
	"testing"
	"time"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMedicalProfileService(r *testRepos) *MedicalProfileService {
	return NewMedicalProfileService(r.profiles, r.doctors, r.audit)
}

func TestMedicalProfileService_SubmitOnce(t *testing.T) {
	r := newTestRepos(t)
	patient := testutil.SeedPatient(t, r.db, "p@example.com")
	svc := newMedicalProfileService(r)
	ctx := context.Background()
	actor := patientActor(patient.ID)

	exists, err := svc.ProfileExists(ctx, actor)
	require.NoError(t, err)
	assert.False(t, exists)

	profile, err := svc.SubmitProfile(ctx, actor, MedicalProfileInput{
		BloodType:   "O+",
		Allergies:   []string{"penicillin", " "},
		LastCheckup: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"penicillin"}, []string(profile.Allergies))
	assert.Empty(t, profile.Medications)
	require.NotNil(t, profile.LastCheckup)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *profile.LastCheckup)

	exists, err = svc.ProfileExists(ctx, actor)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.SubmitProfile(ctx, actor, MedicalProfileInput{BloodType: "A+"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestMedicalProfileService_RejectsBadInput(t *testing.T) {
	r := newTestRepos(t)
	patient := testutil.SeedPatient(t, r.db, "p@example.com")
	svc := newMedicalProfileService(r)
	ctx := context.Background()

	_, err := svc.SubmitProfile(ctx, patientActor(patient.ID), MedicalProfileInput{LastCheckup: "15/03/2024"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.SubmitProfile(ctx, hospitalActor(1), MedicalProfileInput{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.GetProfile(ctx, patient.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMedicalProfileService_Favorites(t *testing.T) {
	r := newTestRepos(t)
	testutil.SeedHospital(t, r.db, 1)
	patient := testutil.SeedPatient(t, r.db, "p@example.com")
	svc := newMedicalProfileService(r)
	ctx := context.Background()
	actor := patientActor(patient.ID)

	doctor := &models.Doctor{HospitalID: 1, Name: "Dr. Sen", Specialization: "Neurology", Shift: models.DefaultShift}
	require.NoError(t, r.doctors.CreateDoctor(ctx, doctor))

	_, err := svc.AddFavoriteDoctor(ctx, actor, doctor.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "profile must exist first")

	_, err = svc.SubmitProfile(ctx, actor, MedicalProfileInput{BloodType: "B+", LastCheckup: "2024-03-15T10:00:00Z"})
	require.NoError(t, err)

	profile, err := svc.AddFavoriteDoctor(ctx, actor, doctor.ID)
	require.NoError(t, err)
	require.Len(t, profile.FavoriteDoctors, 1)
	assert.Equal(t, doctor.ID, profile.FavoriteDoctors[0].ID)

	_, err = svc.AddFavoriteDoctor(ctx, actor, 12345)
	assert.ErrorIs(t, err, apperr.ErrInvalidReference)

	profile, err = svc.RemoveFavoriteDoctor(ctx, actor, doctor.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.FavoriteDoctors)
}
