package service

import (
	"testing"
	"time"

	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/internal/testutil"
	"hospital-coordination-backend/pkg/utils"

	"gorm.io/gorm"
)

type testRepos struct {
	db        *gorm.DB
	hospitals *repository.HospitalRepository
	patients  *repository.PatientRepository
	tokens    *repository.TokenRepository
	audit     *repository.AuditRepository
	resources *repository.ResourceRepository
	doctors   *repository.DoctorRepository
	profiles  *repository.MedicalProfileRepository
	community *repository.CommunityRepository
	payments  *repository.PaymentRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	db := testutil.NewDB(t)
	return &testRepos{
		db:        db,
		hospitals: repository.NewHospitalRepo(db),
		patients:  repository.NewPatientRepo(db),
		tokens:    repository.NewTokenRepo(db),
		audit:     repository.NewAuditRepo(db),
		resources: repository.NewResourceRepo(db),
		doctors:   repository.NewDoctorRepo(db),
		profiles:  repository.NewMedicalProfileRepo(db),
		community: repository.NewCommunityRepo(db),
		payments:  repository.NewPaymentRepo(db),
	}
}

func newTestTokenManager() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", 15*time.Minute, time.Hour)
}

func hospitalActor(id uint) Actor { return Actor{ID: id, Role: "hospital"} }

func patientActor(id uint) Actor { return Actor{ID: id, Role: "patient"} }
