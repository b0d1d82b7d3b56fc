package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type MedicalProfileRepository struct {
	db *gorm.DB
}

func NewMedicalProfileRepo(db *gorm.DB) *MedicalProfileRepository {
	return &MedicalProfileRepository{db: db}
}

// CreateProfile creates a new medical profile
func (r *MedicalProfileRepository) CreateProfile(ctx context.Context, profile *models.MedicalProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// ExistsForPatient reports whether patientID already submitted a profile
func (r *MedicalProfileRepository) ExistsForPatient(ctx context.Context, patientID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MedicalProfile{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count > 0, err
}

// GetByPatientID loads a profile with its favorite doctors
func (r *MedicalProfileRepository) GetByPatientID(ctx context.Context, patientID uint) (*models.MedicalProfile, error) {
	var profile models.MedicalProfile
	err := r.db.WithContext(ctx).
		Preload("FavoriteDoctors", func(db *gorm.DB) *gorm.DB { return db.Order("doctors.id ASC") }).
		Where("patient_id = ?", patientID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// AddFavorite links doctor to the profile; adding twice is a no-op
func (r *MedicalProfileRepository) AddFavorite(ctx context.Context, profile *models.MedicalProfile, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Model(profile).Association("FavoriteDoctors").Append(doctor)
}

// RemoveFavorite unlinks doctor from the profile
func (r *MedicalProfileRepository) RemoveFavorite(ctx context.Context, profile *models.MedicalProfile, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Model(profile).Association("FavoriteDoctors").Delete(doctor)
}
