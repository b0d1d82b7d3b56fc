package models

import "time"

// ResourceRow is one stored record per hospital for a resource kind.
// Counters returns pointers to the count columns in display order; the json
// tags carry the canonical field names so the struct marshals as the public
// record.
type ResourceRow interface {
	TableName() string
	Counters() []*int
}

// BedInventory represents the bed_inventories table
type BedInventory struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	HospitalID uint      `gorm:"not null;uniqueIndex" json:"-"`
	ICU        int       `gorm:"column:icu;not null" json:"ICU" validate:"gte=0,lte=2147483647"`
	General    int       `gorm:"column:general;not null" json:"General" validate:"gte=0,lte=2147483647"`
	Emergency  int       `gorm:"column:emergency;not null" json:"Emergency" validate:"gte=0,lte=2147483647"`
	Maternity  int       `gorm:"column:maternity;not null" json:"Maternity" validate:"gte=0,lte=2147483647"`
	Pediatric  int       `gorm:"column:pediatric;not null" json:"Pediatric" validate:"gte=0,lte=2147483647"`
	UpdatedAt  time.Time `json:"-"`
}

func (BedInventory) TableName() string { return "bed_inventories" }

func (b *BedInventory) Counters() []*int {
	return []*int{&b.ICU, &b.General, &b.Emergency, &b.Maternity, &b.Pediatric}
}

// BloodInventory represents the blood_inventories table
type BloodInventory struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	HospitalID uint      `gorm:"not null;uniqueIndex" json:"-"`
	APositive  int       `gorm:"column:a_positive;not null" json:"A_Positive" validate:"gte=0,lte=2147483647"`
	BPositive  int       `gorm:"column:b_positive;not null" json:"B_Positive" validate:"gte=0,lte=2147483647"`
	OPositive  int       `gorm:"column:o_positive;not null" json:"O_Positive" validate:"gte=0,lte=2147483647"`
	ABPositive int       `gorm:"column:ab_positive;not null" json:"AB_Positive" validate:"gte=0,lte=2147483647"`
	UpdatedAt  time.Time `json:"-"`
}

func (BloodInventory) TableName() string { return "blood_inventories" }

func (b *BloodInventory) Counters() []*int {
	return []*int{&b.APositive, &b.BPositive, &b.OPositive, &b.ABPositive}
}

// OxygenInventory represents the oxygen_inventories table
type OxygenInventory struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	HospitalID      uint      `gorm:"not null;uniqueIndex" json:"-"`
	OxygenCylinders int       `gorm:"column:oxygen_cylinders;not null" json:"Oxygen Cylinders" validate:"gte=0,lte=2147483647"`
	LiquidOxygen    int       `gorm:"column:liquid_oxygen;not null" json:"Liquid Oxygen" validate:"gte=0,lte=2147483647"`
	UpdatedAt       time.Time `json:"-"`
}

func (OxygenInventory) TableName() string { return "oxygen_inventories" }

func (o *OxygenInventory) Counters() []*int {
	return []*int{&o.OxygenCylinders, &o.LiquidOxygen}
}

// AmbulanceFleet represents the ambulance_fleets table
// No relation between total and the other two counts is enforced
type AmbulanceFleet struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	HospitalID       uint      `gorm:"not null;uniqueIndex" json:"-"`
	Total            int       `gorm:"column:total;not null" json:"total" validate:"gte=0,lte=2147483647"`
	InOperation      int       `gorm:"column:in_operation;not null" json:"inOperation" validate:"gte=0,lte=2147483647"`
	UnderMaintenance int       `gorm:"column:under_maintenance;not null" json:"underMaintenance" validate:"gte=0,lte=2147483647"`
	UpdatedAt        time.Time `json:"-"`
}

func (AmbulanceFleet) TableName() string { return "ambulance_fleets" }

func (a *AmbulanceFleet) Counters() []*int {
	return []*int{&a.Total, &a.InOperation, &a.UnderMaintenance}
}
