package models

import "time"

// Principal roles carried in access tokens and refresh token rows
const (
	RoleHospital = "hospital"
	RolePatient  = "patient"
)

// Patient represents the patients table
type Patient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// RefreshToken represents the refresh_tokens table. A token belongs to either
// a hospital or a patient, told apart by PrincipalRole.
type RefreshToken struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PrincipalID   uint      `gorm:"not null;index:idx_refresh_principal" json:"principal_id"`
	PrincipalRole string    `gorm:"size:20;not null;index:idx_refresh_principal" json:"principal_role"`
	TokenHash     string    `gorm:"not null;size:255;uniqueIndex" json:"-"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	Revoked       bool      `gorm:"not null;default:false" json:"revoked"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
