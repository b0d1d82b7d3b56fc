package models

import "time"

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
)

// Payment records a payment intent created through the gateway
type Payment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PaymentIntentID string    `gorm:"size:255;uniqueIndex;not null" json:"paymentIntentId"`
	PrincipalID     uint      `gorm:"not null;index" json:"principalId"`
	PrincipalRole   string    `gorm:"size:20;not null" json:"principalRole"`
	Amount          int64     `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"size:10;not null" json:"currency"`
	Description     string    `gorm:"size:500" json:"description,omitempty"`
	Status          string    `gorm:"size:50;not null" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
