package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetDoctorsByHospitalID lists a hospital's doctors in creation order
func (r *DoctorRepository) GetDoctorsByHospitalID(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Order("id ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor regardless of hospital
func (r *DoctorRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// GetHospitalDoctor retrieves a doctor only if it belongs to hospitalID
func (r *DoctorRepository) GetHospitalDoctor(ctx context.Context, hospitalID, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).Where("id = ? AND hospital_id = ?", id, hospitalID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

// UpdateDoctor persists every column of doctor
func (r *DoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

// DeleteDoctor removes the doctor and any favorite links to it
func (r *DoctorRepository) DeleteDoctor(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM medical_profile_favorite_doctors WHERE doctor_id = ?", doctor.ID).Error; err != nil {
			return err
		}
		return tx.Delete(doctor).Error
	})
}
