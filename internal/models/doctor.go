package models

import "time"

// DefaultShift is stored when a doctor is created without a shift
const DefaultShift = "Not Assigned"

// Doctor represents the doctors table
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HospitalID     uint      `gorm:"not null;index" json:"hospitalId"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Specialization string    `gorm:"size:255;not null" json:"specialization"`
	Shift          string    `gorm:"size:100;not null" json:"shift"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Hospital       *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
