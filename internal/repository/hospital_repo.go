package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetAllHospitals retrieves every hospital ordered by name
func (r *HospitalRepository) GetAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalByID retrieves a hospital by ID
func (r *HospitalRepository) GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// GetHospitalByLicense retrieves a hospital by its license number
func (r *HospitalRepository) GetHospitalByLicense(ctx context.Context, license string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("license_number = ?", license).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// Exists reports whether a hospital with id is registered
func (r *HospitalRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Hospital{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// EmailOrLicenseTaken reports whether either identifier is already registered
func (r *HospitalRepository) EmailOrLicenseTaken(ctx context.Context, email, license string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Hospital{}).
		Where("email = ? OR license_number = ?", email, license).
		Count(&count).Error
	return count > 0, err
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}
