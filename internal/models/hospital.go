package models

import "time"

// Hospital is the identity anchor every resource record and doctor hangs off
type Hospital struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	ContactPerson string    `gorm:"size:255" json:"contactPerson"`
	Phone         string    `gorm:"size:50" json:"phone"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	LicenseNumber string    `gorm:"size:100;uniqueIndex;not null" json:"licenseNumber"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
