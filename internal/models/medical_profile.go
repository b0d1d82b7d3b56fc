package models

import (
	"time"

	"gorm.io/datatypes"
)

// MedicalProfile represents the medical_profiles table, one per patient
type MedicalProfile struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	PatientID       uint                        `gorm:"not null;uniqueIndex" json:"userId"`
	BloodType       string                      `gorm:"size:10" json:"bloodType"`
	Allergies       datatypes.JSONSlice[string] `json:"allergies"`
	Medications     datatypes.JSONSlice[string] `json:"medications"`
	Conditions      datatypes.JSONSlice[string] `json:"conditions"`
	Vaccinations    datatypes.JSONSlice[string] `json:"vaccinations"`
	LastCheckup     *time.Time                  `json:"lastCheckup"`
	FavoriteDoctors []Doctor                    `gorm:"many2many:medical_profile_favorite_doctors;constraint:OnDelete:CASCADE" json:"favoriteDoctors"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// TableName specifies the table name for MedicalProfile model
func (MedicalProfile) TableName() string {
	return "medical_profiles"
}
